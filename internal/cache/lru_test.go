package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestLRUCache_GetSet(t *testing.T) {
	c := NewLRUCache[int](2, 0)
	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("expected overwrite, got %d", v)
	}
	if c.Size() != 2 {
		t.Fatalf("Size = %d, want 2", c.Size())
	}
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[string](2, 0)
	c.Set("a", "A")
	c.Set("b", "B")
	c.Get("a")
	c.Set("c", "C")

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to survive")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Fatalf("Evictions = %d, want 1", got)
	}
}

func TestLRUCache_TTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[int](4, time.Minute).WithClock(clock.now)
	c.Set("a", 1)
	c.Set("b", 2)

	clock.t = clock.t.Add(30 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("entry expired early")
	}

	clock.t = clock.t.Add(time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be expired")
	}
	if removed := c.CleanExpired(); removed != 1 {
		t.Fatalf("CleanExpired = %d, want 1", removed)
	}
	if c.Size() != 0 {
		t.Fatalf("Size = %d after cleanup", c.Size())
	}
}

func TestLRUCache_DeletePurgeStats(t *testing.T) {
	c := NewLRUCache[int](0, 0)
	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("unexpected stats %+v", s)
	}

	c.Delete("a")
	if c.Size() != 0 {
		t.Fatalf("Delete left %d entries", c.Size())
	}
	c.Set("b", 2)
	c.Purge()
	if c.Size() != 0 || c.Stats() != (Stats{}) {
		t.Fatalf("Purge did not reset cache")
	}
}

func TestNoop(t *testing.T) {
	var c Cache[int] = Noop[int]{}
	c.Set("a", 1)
	if _, ok := c.Get("a"); ok || c.Size() != 0 {
		t.Fatalf("Noop stored a value")
	}
}
