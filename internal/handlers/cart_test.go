package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/repos"
	"github.com/yungbote/storefront-backend/internal/services"
	"github.com/yungbote/storefront-backend/internal/types"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	store := kv.NewMemoryStore()
	cartService := services.NewCartService(repos.NewCartRepo(store, log), log)
	h := NewCartHandler(log, cartService)

	r := gin.New()
	r.GET("/api/cart", h.GetCart)
	r.GET("/api/cart/summary", h.GetSummary)
	r.POST("/api/cart/items", h.AddItem)
	r.PATCH("/api/cart/items/:productId", h.UpdateItem)
	r.DELETE("/api/cart/items/:productId", h.RemoveItem)
	r.DELETE("/api/cart", h.ClearCart)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartFlow(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{
		"product":  gin.H{"id": 1, "title": "Phone", "price": 50},
		"quantity": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart/summary", nil)
	var summary types.OrderSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	// 50 x 2 = 100: still pays shipping, threshold is strict.
	if summary.Subtotal != 100 || summary.Shipping != 10 || summary.Total != 120 {
		t.Fatalf("summary=%+v, want subtotal 100 shipping 10 total 120", summary)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/cart/items/1", gin.H{"quantity": 3})
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart/summary", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Subtotal != 150 || summary.Shipping != 0 || summary.ItemCount != 3 {
		t.Fatalf("summary=%+v, want subtotal 150 shipping 0 count 3", summary)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/cart/items/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	var cart struct {
		Items   []types.CartItem   `json:"items"`
		Summary types.OrderSummary `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("items=%+v, want empty", cart.Items)
	}
	if cart.Summary.Total != 10 {
		t.Fatalf("empty cart total=%v, want 10 (flat shipping)", cart.Summary.Total)
	}
}

func TestAddItemRejectsMissingProduct(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"quantity": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestUpdateItemRejectsNonNumericID(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/cart/items/abc", gin.H{"quantity": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}
