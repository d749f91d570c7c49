package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type WishlistHandler struct {
	log             *logger.Logger
	wishlistService services.WishlistService
}

func NewWishlistHandler(log *logger.Logger, wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		log:             log.With("handler", "WishlistHandler"),
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	RespondOK(c, gin.H{"items": h.wishlistService.Items()})
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	items, err := h.wishlistService.Toggle(c.Request.Context(), productID)
	if err != nil {
		h.log.Error("Toggle failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusInternalServerError, "wishlist_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"items":      items,
		"inWishlist": h.wishlistService.Contains(productID),
	})
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	items, err := h.wishlistService.Add(c.Request.Context(), productID)
	if err != nil {
		h.log.Error("AddItem failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusInternalServerError, "wishlist_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	items, err := h.wishlistService.Remove(c.Request.Context(), productID)
	if err != nil {
		h.log.Error("RemoveItem failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusInternalServerError, "wishlist_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *WishlistHandler) Contains(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	RespondOK(c, gin.H{"inWishlist": h.wishlistService.Contains(productID)})
}
