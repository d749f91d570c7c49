package kv

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryStoreAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	val, ok, err := store.Get(context.Background(), "cart")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || val != nil {
		t.Fatalf("absent key returned (%v, %v), want (nil, false)", val, ok)
	}
}

func TestMemoryStoreSetGetRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "cart", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := store.Get(ctx, "cart")
	if err != nil || !ok {
		t.Fatalf("get after set: val=%s ok=%v err=%v", val, ok, err)
	}
	if !bytes.Equal(val, []byte(`[]`)) {
		t.Fatalf("value=%s, want []", val)
	}

	if err := store.Remove(ctx, "cart"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "cart"); ok {
		t.Fatal("key still present after remove")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte(`[1]`)
	if err := store.Set(ctx, "wishlist", original); err != nil {
		t.Fatalf("set: %v", err)
	}
	original[1] = '9'

	val, _, _ := store.Get(ctx, "wishlist")
	if !bytes.Equal(val, []byte(`[1]`)) {
		t.Fatalf("stored value aliased caller buffer: %s", val)
	}
	val[1] = '8'

	again, _, _ := store.Get(ctx, "wishlist")
	if !bytes.Equal(again, []byte(`[1]`)) {
		t.Fatalf("returned value aliased store buffer: %s", again)
	}
}
