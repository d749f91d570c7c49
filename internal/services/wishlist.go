package services

import (
	"context"
	"sync"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/repos"
)

// WishlistService owns wishlist membership. Insertion order is preserved for
// stable rendering but carries no meaning. Same write-through contract as the
// cart: memory and store change in one step.
type WishlistService interface {
	Toggle(ctx context.Context, productID int64) ([]int64, error)
	Add(ctx context.Context, productID int64) ([]int64, error)
	Remove(ctx context.Context, productID int64) ([]int64, error)
	Contains(productID int64) bool
	Items() []int64
}

type wishlistService struct {
	mu   sync.Mutex
	ids  []int64
	repo repos.WishlistRepo
	log  *logger.Logger
}

func NewWishlistService(repo repos.WishlistRepo, baseLog *logger.Logger) WishlistService {
	serviceLog := baseLog.With("service", "WishlistService")

	ids, err := repo.Load(context.Background())
	if err != nil {
		serviceLog.Warn("Failed to load wishlist snapshot, starting empty", "error", err)
		ids = []int64{}
	}
	serviceLog.Info("Wishlist loaded", "members", len(ids))

	return &wishlistService{
		ids:  ids,
		repo: repo,
		log:  serviceLog,
	}
}

func (ws *wishlistService) Toggle(ctx context.Context, productID int64) ([]int64, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if idx := ws.indexOf(productID); idx >= 0 {
		ws.ids = append(ws.ids[:idx], ws.ids[idx+1:]...)
	} else {
		ws.ids = append(ws.ids, productID)
	}

	if err := ws.repo.Save(ctx, ws.ids); err != nil {
		ws.log.Error("Failed to persist wishlist after toggle", "error", err, "product_id", productID)
		return ws.snapshot(), err
	}
	return ws.snapshot(), nil
}

func (ws *wishlistService) Add(ctx context.Context, productID int64) ([]int64, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.indexOf(productID) >= 0 {
		return ws.snapshot(), nil
	}
	ws.ids = append(ws.ids, productID)

	if err := ws.repo.Save(ctx, ws.ids); err != nil {
		ws.log.Error("Failed to persist wishlist after add", "error", err, "product_id", productID)
		return ws.snapshot(), err
	}
	return ws.snapshot(), nil
}

func (ws *wishlistService) Remove(ctx context.Context, productID int64) ([]int64, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	idx := ws.indexOf(productID)
	if idx < 0 {
		return ws.snapshot(), nil
	}
	ws.ids = append(ws.ids[:idx], ws.ids[idx+1:]...)

	if err := ws.repo.Save(ctx, ws.ids); err != nil {
		ws.log.Error("Failed to persist wishlist after remove", "error", err, "product_id", productID)
		return ws.snapshot(), err
	}
	return ws.snapshot(), nil
}

func (ws *wishlistService) Contains(productID int64) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.indexOf(productID) >= 0
}

func (ws *wishlistService) Items() []int64 {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.snapshot()
}

// Caller holds ws.mu.
func (ws *wishlistService) indexOf(productID int64) int {
	for i, id := range ws.ids {
		if id == productID {
			return i
		}
	}
	return -1
}

// Caller holds ws.mu.
func (ws *wishlistService) snapshot() []int64 {
	out := make([]int64, len(ws.ids))
	copy(out, ws.ids)
	return out
}
