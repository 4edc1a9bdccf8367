package memory

import (
	"context"
	"errors"
	"testing"

	"finanzas/internal/kv"
)

func TestMemoryStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Read(ctx, "slot"); ok || err != nil {
		t.Fatalf("expected missing slot, got ok=%v err=%v", ok, err)
	}
	if err := s.Write(ctx, "slot", "[]"); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, ok, err := s.Read(ctx, "slot")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("unexpected read: v=%q ok=%v err=%v", v, ok, err)
	}
	if s.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", s.Writes())
	}
}

func TestMemoryStoreSeedAndEmptySlot(t *testing.T) {
	ctx := context.Background()
	s := NewWithSeed(map[string]string{"a": "1"})
	if v, ok, _ := s.Read(ctx, "a"); !ok || v != "1" {
		t.Fatalf("seed not visible: %q %v", v, ok)
	}
	if err := s.Write(ctx, "", "x"); !errors.Is(err, kv.ErrEmptySlot) {
		t.Fatalf("expected ErrEmptySlot, got %v", err)
	}
	if _, _, err := s.Read(ctx, ""); !errors.Is(err, kv.ErrEmptySlot) {
		t.Fatalf("expected ErrEmptySlot, got %v", err)
	}
}

var _ kv.Store = (*Store)(nil)
