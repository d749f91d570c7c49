package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/handlers"
	"github.com/yungbote/storefront-backend/internal/middleware"
)

type RouterConfig struct {
	CartHandler     *handlers.CartHandler
	WishlistHandler *handlers.WishlistHandler
	ProductHandler  *handlers.ProductHandler
	RequestID       *middleware.RequestIDMiddleware
	CORSOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cfg.RequestID.RequestID())

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Cart
		api.GET("/cart", cfg.CartHandler.GetCart)
		api.GET("/cart/summary", cfg.CartHandler.GetSummary)
		api.POST("/cart/items", cfg.CartHandler.AddItem)
		api.PATCH("/cart/items/:productId", cfg.CartHandler.UpdateItem)
		api.DELETE("/cart/items/:productId", cfg.CartHandler.RemoveItem)
		api.DELETE("/cart", cfg.CartHandler.ClearCart)
		// Wishlist
		api.GET("/wishlist", cfg.WishlistHandler.GetWishlist)
		api.POST("/wishlist/:productId/toggle", cfg.WishlistHandler.Toggle)
		api.PUT("/wishlist/:productId", cfg.WishlistHandler.AddItem)
		api.DELETE("/wishlist/:productId", cfg.WishlistHandler.RemoveItem)
		api.GET("/wishlist/:productId", cfg.WishlistHandler.Contains)
		// Catalog passthrough
		api.GET("/products/:productId", cfg.ProductHandler.GetProduct)
	}

	return router
}
