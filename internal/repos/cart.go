package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/types"
)

const cartKey = "cart"

// CartRepo round-trips the cart snapshot through the key/value store.
// Load fails soft: a malformed persisted value is discarded (with a warning)
// and the caller starts from an empty cart — corrupt data must never take the
// process down. Store I/O failures are still surfaced as errors.
type CartRepo interface {
	Load(ctx context.Context) ([]types.CartItem, error)
	Save(ctx context.Context, items []types.CartItem) error
	Clear(ctx context.Context) error
}

type cartRepo struct {
	store kv.Store
	log   *logger.Logger
}

func NewCartRepo(store kv.Store, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{store: store, log: repoLog}
}

func (cr *cartRepo) Load(ctx context.Context) ([]types.CartItem, error) {
	raw, ok, err := cr.store.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	if !ok {
		return []types.CartItem{}, nil
	}

	var items []types.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		cr.log.Warn("Discarding malformed cart snapshot", "error", err)
		return []types.CartItem{}, nil
	}
	if items == nil {
		items = []types.CartItem{}
	}
	return items, nil
}

func (cr *cartRepo) Save(ctx context.Context, items []types.CartItem) error {
	if items == nil {
		items = []types.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := cr.store.Set(ctx, cartKey, raw); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

func (cr *cartRepo) Clear(ctx context.Context) error {
	if err := cr.store.Remove(ctx, cartKey); err != nil {
		return fmt.Errorf("clear cart snapshot: %w", err)
	}
	return nil
}
