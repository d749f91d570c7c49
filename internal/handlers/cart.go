package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/services"
	"github.com/yungbote/storefront-backend/internal/types"
)

type CartHandler struct {
	log         *logger.Logger
	cartService services.CartService
}

func NewCartHandler(log *logger.Logger, cartService services.CartService) *CartHandler {
	return &CartHandler{
		log:         log.With("handler", "CartHandler"),
		cartService: cartService,
	}
}

type addCartItemRequest struct {
	Product  types.CartItem `json:"product"`
	Quantity int            `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items := h.cartService.Items()
	RespondOK(c, gin.H{
		"items":   items,
		"summary": h.cartService.Summary(),
	})
}

func (h *CartHandler) GetSummary(c *gin.Context) {
	RespondOK(c, h.cartService.Summary())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Product.ProductID == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("product id is required"))
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	items, err := h.cartService.Add(c.Request.Context(), req.Product, quantity)
	if err != nil {
		h.log.Error("AddItem failed", "error", err, "product_id", req.Product.ProductID)
		RespondError(c, http.StatusInternalServerError, "cart_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	items, err := h.cartService.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		h.log.Error("UpdateItem failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusInternalServerError, "cart_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	items, err := h.cartService.Remove(c.Request.Context(), productID)
	if err != nil {
		h.log.Error("RemoveItem failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusInternalServerError, "cart_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		h.log.Error("ClearCart failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "cart_persist_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": []types.CartItem{}})
}

func parseProductID(c *gin.Context) (int64, error) {
	raw := c.Param("productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id %q is not numeric", raw)
	}
	return id, nil
}
