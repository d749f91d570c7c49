package services

import (
	"context"
	"sync"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/repos"
	"github.com/yungbote/storefront-backend/internal/types"
)

// CartService owns the ordered cart line items. Every mutation updates memory
// and writes the snapshot through to the store in the same step, so readers
// never observe the two disagreeing within this process.
//
// Identity works at two granularities, deliberately: lines are unique per
// (product, color, model) so variants merge separately on Add, while Remove
// acts on the whole product and drops every variant of it — the cart page's
// remove control is a product-level action. Remove persists the snapshot even
// when the id matched nothing.
//
// Invalid inputs (quantity below 1, unknown product ids) are documented
// no-ops: the unchanged snapshot comes back with a nil error. Errors are
// reserved for persistence failures.
type CartService interface {
	Add(ctx context.Context, item types.CartItem, quantity int) ([]types.CartItem, error)
	Remove(ctx context.Context, productID int64) ([]types.CartItem, error)
	UpdateQuantity(ctx context.Context, productID int64, quantity int) ([]types.CartItem, error)
	Clear(ctx context.Context) error
	Items() []types.CartItem
	Summary() types.OrderSummary
}

type cartService struct {
	mu    sync.Mutex
	items []types.CartItem
	repo  repos.CartRepo
	log   *logger.Logger
}

// NewCartService loads the persisted snapshot once at construction. A store
// read failure degrades to an empty cart rather than failing startup.
func NewCartService(repo repos.CartRepo, baseLog *logger.Logger) CartService {
	serviceLog := baseLog.With("service", "CartService")

	items, err := repo.Load(context.Background())
	if err != nil {
		serviceLog.Warn("Failed to load cart snapshot, starting empty", "error", err)
		items = []types.CartItem{}
	}
	serviceLog.Info("Cart loaded", "lines", len(items))

	return &cartService{
		items: items,
		repo:  repo,
		log:   serviceLog,
	}
}

func (cs *cartService) Add(ctx context.Context, item types.CartItem, quantity int) ([]types.CartItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if quantity < 1 {
		cs.log.Debug("Ignoring add with quantity below 1", "product_id", item.ProductID, "quantity", quantity)
		return cs.snapshot(), nil
	}

	merged := false
	for i := range cs.items {
		if cs.items[i].SameLine(item) {
			cs.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = quantity
		cs.items = append(cs.items, item)
	}

	if err := cs.repo.Save(ctx, cs.items); err != nil {
		cs.log.Error("Failed to persist cart after add", "error", err, "product_id", item.ProductID)
		return cs.snapshot(), err
	}
	return cs.snapshot(), nil
}

func (cs *cartService) Remove(ctx context.Context, productID int64) ([]types.CartItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	kept := cs.items[:0]
	for _, item := range cs.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cs.items = kept

	if err := cs.repo.Save(ctx, cs.items); err != nil {
		cs.log.Error("Failed to persist cart after remove", "error", err, "product_id", productID)
		return cs.snapshot(), err
	}
	return cs.snapshot(), nil
}

func (cs *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) ([]types.CartItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if quantity < 1 {
		cs.log.Debug("Ignoring quantity update below 1", "product_id", productID, "quantity", quantity)
		return cs.snapshot(), nil
	}

	for i := range cs.items {
		if cs.items[i].ProductID == productID {
			cs.items[i].Quantity = quantity
			if err := cs.repo.Save(ctx, cs.items); err != nil {
				cs.log.Error("Failed to persist cart after quantity update", "error", err, "product_id", productID)
				return cs.snapshot(), err
			}
			return cs.snapshot(), nil
		}
	}
	// Unknown product: no-op, no persist.
	return cs.snapshot(), nil
}

func (cs *cartService) Clear(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.items = []types.CartItem{}
	if err := cs.repo.Clear(ctx); err != nil {
		cs.log.Error("Failed to clear persisted cart", "error", err)
		return err
	}
	return nil
}

func (cs *cartService) Items() []types.CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.snapshot()
}

func (cs *cartService) Summary() types.OrderSummary {
	return ComputeSummary(cs.Items())
}

// snapshot returns a copy; callers must not be able to reach the backing
// array. Caller holds cs.mu.
func (cs *cartService) snapshot() []types.CartItem {
	out := make([]types.CartItem, len(cs.items))
	copy(out, cs.items)
	return out
}
