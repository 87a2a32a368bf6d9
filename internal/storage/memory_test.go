package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, KeyCart); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := s.Set(ctx, KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	blob, err := s.Get(ctx, KeyCart)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(blob) != `[]` {
		t.Fatalf("unexpected blob: %s", blob)
	}

	// Full-slice overwrite, last write wins.
	if err := s.Set(ctx, KeyCart, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	blob, _ = s.Get(ctx, KeyCart)
	if string(blob) != `[{"id":"1"}]` {
		t.Fatalf("overwrite lost: %s", blob)
	}

	if err := s.Delete(ctx, KeyCart); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Get(ctx, KeyCart); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte(`{"name":"apple"}`)
	if err := s.Set(ctx, KeyProducts, original); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	original[2] = 'X'

	blob, err := s.Get(ctx, KeyProducts)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(blob) != `{"name":"apple"}` {
		t.Fatalf("stored blob aliased caller memory: %s", blob)
	}

	blob[2] = 'Y'
	again, _ := s.Get(ctx, KeyProducts)
	if string(again) != `{"name":"apple"}` {
		t.Fatalf("returned blob aliased store memory: %s", again)
	}
}
