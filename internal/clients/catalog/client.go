package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/types"
	"github.com/yungbote/storefront-backend/internal/utils"
)

// Client is the read-only product lookup UI consumers use to populate a cart
// line before it reaches the ledger. The response shape is passed through
// as-is; the cart engine does its own coercion on persisted data.
type Client interface {
	FetchProduct(ctx context.Context, id int64) (*types.Product, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	baseURL := strings.TrimRight(utils.GetEnv("CATALOG_API_URL", "https://dummyjson.com", log), "/")
	return &client{
		log:     log.With("client", "CatalogClient"),
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *client) FetchProduct(ctx context.Context, id int64) (*types.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch product %d: unexpected status %d", id, resp.StatusCode)
	}

	var product types.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", id, err)
	}
	return &product, nil
}
