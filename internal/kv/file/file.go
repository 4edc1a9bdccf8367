// Package file stores each slot as a JSON document under a data directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"finanzas/internal/kv"
)

const ext = ".json"

type Store struct {
	mu  sync.Mutex
	dir string
}

// New returns a store rooted at dir, creating the directory when missing.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory slots are written to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return "", kv.ErrEmptySlot
	}
	if strings.ContainsAny(slot, `/\`) || slot == "." || slot == ".." {
		return "", fmt.Errorf("invalid slot name %q", slot)
	}
	return filepath.Join(s.dir, slot+ext), nil
}

// Read returns the contents of the slot file.
func (s *Store) Read(_ context.Context, slot string) (string, bool, error) {
	p, err := s.path(slot)
	if err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	return string(b), true, nil
}

// Write replaces the slot file. The value goes to a temporary file first and
// is renamed into place so readers never see a partial document.
func (s *Store) Write(_ context.Context, slot, value string) error {
	p, err := s.path(slot)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(p)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replace slot %s: %w", slot, err)
	}
	return nil
}
