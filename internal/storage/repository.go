package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finanzas/internal/kv"
	"finanzas/internal/log"

	_ "modernc.org/sqlite"
)

const (
	readSlotSQL  = `SELECT value FROM kv_slots WHERE slot = ?`
	writeSlotSQL = `INSERT INTO kv_slots (slot, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	slotUpdatedSQL = `SELECT updated_at FROM kv_slots WHERE slot = ?`
)

// SQLiteRepository is a kv.Store backed by a single SQLite table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Read implements kv.SlotReader
func (r *SQLiteRepository) Read(ctx context.Context, slot string) (string, bool, error) {
	if slot == "" {
		return "", false, kv.ErrEmptySlot
	}

	var value string
	err := r.db.QueryRowContext(ctx, readSlotSQL, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	return value, true, nil
}

// Write implements kv.SlotWriter
func (r *SQLiteRepository) Write(ctx context.Context, slot, value string) error {
	if slot == "" {
		return kv.ErrEmptySlot
	}

	if _, err := r.db.ExecContext(ctx, writeSlotSQL, slot, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}

	log.FromContext(ctx).WithComponent(log.ComponentStorage).DebugContext(ctx, "Slot saved to SQLite",
		log.FieldSlot, slot,
		"bytes", len(value))

	return nil
}

// UpdatedAt returns when slot was last written.
func (r *SQLiteRepository) UpdatedAt(ctx context.Context, slot string) (time.Time, error) {
	var updated time.Time
	if err := r.db.QueryRowContext(ctx, slotUpdatedSQL, slot).Scan(&updated); err != nil {
		return time.Time{}, fmt.Errorf("get slot %s timestamp: %w", slot, err)
	}
	return updated, nil
}
