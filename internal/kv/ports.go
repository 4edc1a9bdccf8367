// Package kv defines the key-value port the ledger persists through.
package kv

import (
	"context"
	"errors"
)

// ErrEmptySlot is returned by adapters when asked for a slot without a name.
var ErrEmptySlot = errors.New("empty slot name")

// Ports for outbound storage adapters.
type (
	SlotReader interface {
		// Read returns the value stored in slot. ok is false when the slot
		// has never been written.
		Read(ctx context.Context, slot string) (value string, ok bool, err error)
	}

	SlotWriter interface {
		// Write replaces the value stored in slot.
		Write(ctx context.Context, slot string, value string) error
	}

	Store interface {
		SlotReader
		SlotWriter
	}
)
