package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/handlers"
	"github.com/yungbote/storefront-backend/internal/middleware"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/server"
)

type Handlers struct {
	Cart     *handlers.CartHandler
	Wishlist *handlers.WishlistHandler
	Product  *handlers.ProductHandler
}

type Middleware struct {
	RequestID *middleware.RequestIDMiddleware
}

func wireHandlers(log *logger.Logger, serviceset Services, clientset Clients) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Cart:     handlers.NewCartHandler(log, serviceset.Cart),
		Wishlist: handlers.NewWishlistHandler(log, serviceset.Wishlist),
		Product:  handlers.NewProductHandler(log, clientset.Catalog),
	}
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestID: middleware.NewRequestIDMiddleware(log),
	}
}

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CartHandler:     handlerset.Cart,
		WishlistHandler: handlerset.Wishlist,
		ProductHandler:  handlerset.Product,
		RequestID:       middlewareset.RequestID,
		CORSOrigins:     cfg.CORSOrigins,
	})
}
