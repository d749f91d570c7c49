package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/clients/catalog"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
)

type ProductHandler struct {
	log     *logger.Logger
	catalog catalog.Client
}

func NewProductHandler(log *logger.Logger, catalogClient catalog.Client) *ProductHandler {
	return &ProductHandler{
		log:     log.With("handler", "ProductHandler"),
		catalog: catalogClient,
	}
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := parseProductID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	product, err := h.catalog.FetchProduct(c.Request.Context(), productID)
	if err != nil {
		h.log.Error("GetProduct failed", "error", err, "product_id", productID)
		RespondError(c, http.StatusBadGateway, "catalog_fetch_failed", err)
		return
	}
	RespondOK(c, product)
}
