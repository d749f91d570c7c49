package services

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/repos"
)

func newWishlistFixture(t *testing.T) (WishlistService, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := testLogger(t)
	svc := NewWishlistService(repos.NewWishlistRepo(store, log), log)
	return svc, store
}

func TestToggleAddsThenRemoves(t *testing.T) {
	svc, _ := newWishlistFixture(t)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, 7); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !svc.Contains(7) {
		t.Fatal("product 7 should be in the wishlist after first toggle")
	}

	if _, err := svc.Toggle(ctx, 7); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if svc.Contains(7) {
		t.Fatal("product 7 should be gone after second toggle")
	}
}

func TestDoubleToggleRestoresPriorState(t *testing.T) {
	svc, _ := newWishlistFixture(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := svc.Items()

	if _, err := svc.Toggle(ctx, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.Toggle(ctx, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if !svc.Contains(2) {
		t.Fatal("membership of 2 changed across a toggle pair")
	}
	if len(svc.Items()) != len(before) {
		t.Fatalf("membership size changed across a toggle pair: %v vs %v", svc.Items(), before)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc, store := newWishlistFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(ctx, 5); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if got := len(svc.Items()); got != 1 {
		t.Fatalf("members=%d, want 1", got)
	}

	raw, ok, _ := store.Get(ctx, "wishlist")
	if !ok {
		t.Fatal("wishlist not persisted")
	}
	var persisted []int64
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("decode persisted wishlist: %v", err)
	}
	if len(persisted) != 1 {
		t.Fatalf("persisted duplicates: %v", persisted)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	svc, store := newWishlistFixture(t)
	ctx := context.Background()

	if _, err := svc.Remove(ctx, 99); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "wishlist"); ok {
		t.Fatal("no-op remove should not persist anything")
	}
}

func TestWishlistSurvivesRestart(t *testing.T) {
	store := kv.NewMemoryStore()
	log := testLogger(t)
	ctx := context.Background()

	first := NewWishlistService(repos.NewWishlistRepo(store, log), log)
	for _, id := range []int64{3, 1, 2} {
		if _, err := first.Add(ctx, id); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	second := NewWishlistService(repos.NewWishlistRepo(store, log), log)
	if !reflect.DeepEqual(first.Items(), second.Items()) {
		t.Fatalf("reloaded wishlist differs: %v vs %v", first.Items(), second.Items())
	}
}
