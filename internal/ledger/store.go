// Package ledger owns the canonical transaction collection.
//
// The Store is meant for a single writer: it holds no locks. Every mutation
// rewrites the whole collection into one key-value slot; the write result
// never reaches the caller and the in-memory collection stays authoritative.
package ledger

import (
	"context"
	"errors"

	"finanzas/internal/core"
	"finanzas/internal/kv"
	"finanzas/internal/log"
)

// DefaultSlot is the slot name the collection is stored under.
const DefaultSlot = "finanzas_pro_v1"

type Store struct {
	items   []core.Transaction
	version uint64

	kv     kv.Store
	slot   string
	newID  IDGenerator
	logger *log.Logger
	events *log.StructuredLogger
}

// Option configures a Store.
type Option func(*Store)

// WithSlot overrides the persistence slot name.
func WithSlot(slot string) Option {
	return func(s *Store) {
		if slot != "" {
			s.slot = slot
		}
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent(log.ComponentLedger)
		}
	}
}

// Open builds a Store and loads the collection from store. A missing slot,
// a read error or unreadable content all yield an empty collection. A nil
// store keeps the collection in memory only.
func Open(ctx context.Context, store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:     store,
		slot:   DefaultSlot,
		newID:  NewUUID,
		logger: log.Default(log.ComponentLedger),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.events = log.NewStructuredLogger(s.logger)
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []core.Transaction {
	if s.kv == nil {
		return []core.Transaction{}
	}
	raw, ok, err := s.kv.Read(ctx, s.slot)
	if err != nil {
		s.events.LogLoadFallback(ctx, s.slot, err)
		return []core.Transaction{}
	}
	if !ok {
		s.logger.DebugContext(ctx, "No stored transactions", log.FieldSlot, s.slot)
		return []core.Transaction{}
	}
	txs, err := Decode(raw)
	if err != nil {
		s.events.LogLoadFallback(ctx, s.slot, err)
		return []core.Transaction{}
	}
	s.logger.InfoContext(ctx, "Loaded stored transactions",
		log.FieldSlot, s.slot,
		log.FieldCount, len(txs))
	return txs
}

// Create assigns a fresh id to d and inserts the transaction at the front of
// the collection. The draft is stored as given.
func (s *Store) Create(ctx context.Context, d core.Draft) core.Transaction {
	t := d.WithID(s.newID())

	items := make([]core.Transaction, 0, len(s.items)+1)
	items = append(items, t)
	s.items = append(items, s.items...)
	s.version++

	s.events.LogTransactionCreated(ctx, log.NewFields().
		WithTransaction(t.ID, string(t.Type), t.Amount, t.Category, t.Date.String()))
	s.persist(ctx)
	return t
}

// Delete removes the transaction with id. It reports whether one was found;
// an unknown id leaves the collection unchanged.
func (s *Store) Delete(ctx context.Context, id string) bool {
	items := make([]core.Transaction, 0, len(s.items))
	for _, t := range s.items {
		if t.ID != id {
			items = append(items, t)
		}
	}
	removed := len(items) != len(s.items)
	s.items = items
	s.version++

	s.events.LogTransactionDeleted(ctx, id, removed)
	s.persist(ctx)
	return removed
}

// List returns a copy of the collection, most recently created first.
func (s *Store) List() []core.Transaction {
	return append([]core.Transaction(nil), s.items...)
}

// Get returns the transaction with id.
func (s *Store) Get(id string) (core.Transaction, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.items)
}

// Version changes on every mutation.
func (s *Store) Version() uint64 {
	return s.version
}

// Slot returns the persistence slot name.
func (s *Store) Slot() string {
	return s.slot
}

func (s *Store) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}
	raw, err := Encode(s.items)
	if err != nil {
		s.events.LogError(ctx, "Failed to encode transactions", err, log.OpPersist,
			log.NewFields().WithSlot(s.slot).With(log.FieldCount, len(s.items)))
		return
	}
	if err := s.kv.Write(ctx, s.slot, raw); err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.WarnContext(ctx, "Persist cancelled", log.FieldSlot, s.slot)
			return
		}
		s.events.LogPersistFailure(ctx, s.slot, err)
	}
}
