package repos

import (
	"context"
	"reflect"
	"testing"

	"github.com/yungbote/storefront-backend/internal/kv"
)

func TestWishlistLoadAbsentKey(t *testing.T) {
	repo := NewWishlistRepo(kv.NewMemoryStore(), testLogger(t))

	ids, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ids=%v, want empty", ids)
	}
}

func TestWishlistLoadFailsSoftOnMalformedData(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "not_json", raw: `[1, 2`},
		{name: "not_a_list", raw: `{"wishlist": [1]}`},
		{name: "scalar", raw: `"favorites"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			ctx := context.Background()
			if err := store.Set(ctx, "wishlist", []byte(tc.raw)); err != nil {
				t.Fatalf("seed store: %v", err)
			}

			repo := NewWishlistRepo(store, testLogger(t))
			ids, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("load should fail soft, got error: %v", err)
			}
			if len(ids) != 0 {
				t.Fatalf("ids=%v, want empty", ids)
			}
		})
	}
}

func TestWishlistSaveLoadRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	repo := NewWishlistRepo(store, testLogger(t))

	ids := []int64{3, 1, 7}
	if err := repo.Save(ctx, ids); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(ids, loaded) {
		t.Fatalf("round trip mismatch: saved %v, loaded %v", ids, loaded)
	}
}
