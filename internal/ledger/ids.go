package ledger

import "github.com/google/uuid"

// IDGenerator returns a fresh identifier on every call.
type IDGenerator func() string

// NewUUID generates random (version 4) identifiers.
func NewUUID() string {
	return uuid.NewString()
}
