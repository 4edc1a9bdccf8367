package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"finanzas/internal/core"
	"finanzas/internal/kv/memory"
	"finanzas/internal/log"
)

type failingKV struct {
	readErr  error
	writeErr error
	writes   int
}

func (f *failingKV) Read(context.Context, string) (string, bool, error) {
	return "", false, f.readErr
}

func (f *failingKV) Write(context.Context, string, string) error {
	f.writes++
	return f.writeErr
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func draft(name, amount string, typ core.TransactionType, day int) core.Draft {
	return core.Draft{
		Name:          name,
		Amount:        decimal.RequireFromString(amount),
		Type:          typ,
		Category:      core.DefaultCategoryFor(typ),
		Date:          civil.Date{Year: 2024, Month: time.January, Day: day},
		PaymentMethod: core.DefaultPaymentMethod,
	}
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(log.Config{Level: slog.LevelDebug, Output: buf})
}

func TestStore_CreatePrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := Open(ctx, kv, WithIDGenerator(sequentialIDs()), WithLogger(quietLogger(&bytes.Buffer{})))

	first := s.Create(ctx, draft("Sueldo", "1000", core.Income, 5))
	second := s.Create(ctx, draft("Almuerzo", "200", core.Expense, 10))

	if first.ID != "id-1" || second.ID != "id-2" {
		t.Fatalf("unexpected ids: %s %s", first.ID, second.ID)
	}
	list := s.List()
	if len(list) != 2 || list[0].ID != "id-2" || list[1].ID != "id-1" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if kv.Writes() != 2 {
		t.Fatalf("expected a write per mutation, got %d", kv.Writes())
	}

	reopened := Open(ctx, kv)
	if reopened.Len() != 2 || reopened.List()[0].ID != "id-2" {
		t.Fatalf("reopened store lost data: %+v", reopened.List())
	}
}

func TestStore_CreateIncreasesLengthByOne(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, nil)
	for i := 1; i <= 3; i++ {
		before := s.Len()
		created := s.Create(ctx, draft("x", "1", core.Expense, i))
		if s.Len() != before+1 {
			t.Fatalf("length %d -> %d", before, s.Len())
		}
		if s.List()[0].ID != created.ID {
			t.Fatalf("created transaction is not first")
		}
	}
}

func TestStore_DeleteScenarioC(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, memory.New(), WithIDGenerator(sequentialIDs()))
	income := s.Create(ctx, draft("Sueldo", "1000", core.Income, 5))
	expense := s.Create(ctx, draft("Almuerzo", "200", core.Expense, 10))

	if !s.Delete(ctx, income.ID) {
		t.Fatalf("expected the income transaction to be removed")
	}
	list := s.List()
	if len(list) != 1 || list[0].ID != expense.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
	if _, ok := s.Get(income.ID); ok {
		t.Fatalf("deleted id still present")
	}
}

func TestStore_DeleteUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, memory.New(), WithIDGenerator(sequentialIDs()))
	s.Create(ctx, draft("a", "1", core.Expense, 1))
	s.Create(ctx, draft("b", "2", core.Expense, 2))
	before := s.List()

	if s.Delete(ctx, "missing") {
		t.Fatalf("delete of unknown id reported a removal")
	}
	after := s.List()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestStore_StoresDraftsAsGiven(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, nil)
	d := draft("", "-5", core.TransactionType("otro"), 1)
	got := s.Create(ctx, d)
	if got.Name != "" || !got.Amount.Equal(decimal.NewFromInt(-5)) || got.Type != "otro" {
		t.Fatalf("draft was altered: %+v", got)
	}
}

func TestStore_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, nil, WithIDGenerator(sequentialIDs()))
	s.Create(ctx, draft("a", "1", core.Expense, 1))
	list := s.List()
	list[0].Name = "changed"
	if s.List()[0].Name != "a" {
		t.Fatalf("List exposed internal state")
	}
}

func TestStore_LoadFallbacks(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		kv   func() *memory.Store
	}{
		{"missing slot", memory.New},
		{"corrupt slot", func() *memory.Store {
			return memory.NewWithSeed(map[string]string{DefaultSlot: "not json"})
		}},
		{"wrong shape", func() *memory.Store {
			return memory.NewWithSeed(map[string]string{DefaultSlot: `{"transactions":[]}`})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(ctx, tt.kv(), WithLogger(quietLogger(&bytes.Buffer{})))
			if s.Len() != 0 {
				t.Fatalf("expected empty collection, got %d", s.Len())
			}
		})
	}

	buf := &bytes.Buffer{}
	s := Open(ctx, &failingKV{readErr: errors.New("locked")}, WithLogger(quietLogger(buf)))
	if s.Len() != 0 {
		t.Fatalf("expected empty collection on read error")
	}
	if !strings.Contains(buf.String(), "starting empty") {
		t.Fatalf("expected a fallback log line, got: %s", buf.String())
	}
}

func TestStore_WriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	kv := &failingKV{writeErr: errors.New("disk full")}
	s := Open(ctx, kv, WithIDGenerator(sequentialIDs()), WithLogger(quietLogger(buf)))

	created := s.Create(ctx, draft("a", "1", core.Expense, 1))
	if s.Len() != 1 || s.List()[0].ID != created.ID {
		t.Fatalf("in-memory state lost after failed write")
	}
	s.Delete(ctx, created.ID)
	if s.Len() != 0 {
		t.Fatalf("delete not applied after failed write")
	}
	if kv.writes != 2 {
		t.Fatalf("expected 2 write attempts, got %d", kv.writes)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected write failure to be logged, got: %s", buf.String())
	}
}

func TestStore_VersionAndSlot(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := Open(ctx, kv, WithSlot("custom"))
	v0 := s.Version()
	s.Create(ctx, draft("a", "1", core.Expense, 1))
	s.Delete(ctx, "nope")
	if s.Version() != v0+2 {
		t.Fatalf("expected version to advance per mutation, got %d", s.Version())
	}
	if _, ok, _ := kv.Read(ctx, "custom"); !ok || s.Slot() != "custom" {
		t.Fatalf("expected writes to the custom slot")
	}
}

func TestStore_ReopenKeepsOutOfRangeDates(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := Open(ctx, kv, WithIDGenerator(sequentialIDs()))
	s.Create(ctx, draft("Sueldo", "1000", core.Income, 5))
	odd := draft("Almuerzo", "20", core.Expense, 30)
	odd.Date.Month = time.February
	s.Create(ctx, odd)

	reopened := Open(ctx, kv)
	if reopened.Len() != 2 {
		t.Fatalf("expected 2 transactions after reopen, got %d", reopened.Len())
	}
	got, ok := reopened.Get("id-2")
	if !ok || got.Date != odd.Date {
		t.Fatalf("date not preserved: %+v", got)
	}
}
