// Package cache holds small in-process caches for derived views.
package cache

// Cache is a keyed store of computed values
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)

	// Purge drops every entry
	Purge()

	Size() int
}

// Stats counts lookups since creation or the last Purge
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Noop never stores anything. Useful to disable memoization.
type Noop[T any] struct{}

func (Noop[T]) Get(string) (T, bool) {
	var zero T
	return zero, false
}

func (Noop[T]) Set(string, T) {}
func (Noop[T]) Delete(string) {}
func (Noop[T]) Purge() {}
func (Noop[T]) Size() int { return 0 }
