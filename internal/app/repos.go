package app

import (
	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/repos"
)

type Repos struct {
	Cart     repos.CartRepo
	Wishlist repos.WishlistRepo
}

func wireRepos(store kv.Store, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Cart:     repos.NewCartRepo(store, log),
		Wishlist: repos.NewWishlistRepo(store, log),
	}
}
