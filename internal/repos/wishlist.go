package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
)

const wishlistKey = "wishlist"

// WishlistRepo round-trips the wishlist membership list. The set is persisted
// as a plain list of product ids; duplicates are never written. Same fail-soft
// rule as the cart: anything that does not parse as a list loads as empty.
type WishlistRepo interface {
	Load(ctx context.Context) ([]int64, error)
	Save(ctx context.Context, productIDs []int64) error
	Clear(ctx context.Context) error
}

type wishlistRepo struct {
	store kv.Store
	log   *logger.Logger
}

func NewWishlistRepo(store kv.Store, baseLog *logger.Logger) WishlistRepo {
	repoLog := baseLog.With("repo", "WishlistRepo")
	return &wishlistRepo{store: store, log: repoLog}
}

func (wr *wishlistRepo) Load(ctx context.Context) ([]int64, error) {
	raw, ok, err := wr.store.Get(ctx, wishlistKey)
	if err != nil {
		return nil, fmt.Errorf("load wishlist snapshot: %w", err)
	}
	if !ok {
		return []int64{}, nil
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		wr.log.Warn("Discarding malformed wishlist snapshot", "error", err)
		return []int64{}, nil
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (wr *wishlistRepo) Save(ctx context.Context, productIDs []int64) error {
	if productIDs == nil {
		productIDs = []int64{}
	}
	raw, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("encode wishlist snapshot: %w", err)
	}
	if err := wr.store.Set(ctx, wishlistKey, raw); err != nil {
		return fmt.Errorf("save wishlist snapshot: %w", err)
	}
	return nil
}

func (wr *wishlistRepo) Clear(ctx context.Context) error {
	if err := wr.store.Remove(ctx, wishlistKey); err != nil {
		return fmt.Errorf("clear wishlist snapshot: %w", err)
	}
	return nil
}
