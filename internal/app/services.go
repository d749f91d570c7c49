package app

import (
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type Services struct {
	Cart     services.CartService
	Wishlist services.WishlistService
}

// wireServices constructs the state engine. Construction loads the persisted
// snapshots, so after this point both services hold the authoritative
// in-memory copy for the process.
func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Cart:     services.NewCartService(reposet.Cart, log),
		Wishlist: services.NewWishlistService(reposet.Wishlist, log),
	}
}
