package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	cartdomain "github.com/vibevapes/storefront/internal/cart/domain"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	"github.com/vibevapes/storefront/internal/order/domain"
	"github.com/vibevapes/storefront/pkg/kvstore"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func brl(cents int64) catalogdomain.Money {
	return catalogdomain.Money{Currency: "BRL", Amount: cents}
}

func lines() []cartdomain.Line {
	return []cartdomain.Line{
		{Product: catalogdomain.Product{ID: 1, Name: "Cosmic Mango", Price: brl(2499)}, Quantity: 2},
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	svc := NewService(store, discard())

	first := svc.Add(ctx, lines(), brl(4998), domain.Customer{Name: "Ana", Address: "Rua A"})
	second := svc.Add(ctx, nil, brl(0), domain.Customer{Name: "Bia", Address: "Rua B"})

	orders := svc.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatal("orders must be most recent first")
	}

	raw, err := store.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("expected history persisted: %v", err)
	}
	var persisted []domain.Order
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted history not valid JSON: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted orders, got %d", len(persisted))
	}
}

func TestOrderFieldsFromCreationTime(t *testing.T) {
	svc := NewService(kvstore.NewMemory(), discard())
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)
	svc.now = func() time.Time { return fixed }

	order := svc.Add(context.Background(), lines(), brl(4998), domain.Customer{Name: "Ana", Address: "Rua A"})

	if order.ID != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("id not derived from creation time: %q", order.ID)
	}
	if !order.Date.Equal(fixed) {
		t.Fatalf("date %v, want %v", order.Date, fixed)
	}
	if order.Total.Amount != 4998 {
		t.Fatalf("total %d, want 4998", order.Total.Amount)
	}
}

func TestLoadMissingKeyStartsEmpty(t *testing.T) {
	svc := NewService(kvstore.NewMemory(), discard())

	svc.Load(context.Background())

	if got := svc.Orders(); len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	writer := NewService(store, discard())
	writer.Add(ctx, lines(), brl(4998), domain.Customer{Name: "Ana", Address: "Rua A"})

	reader := NewService(store, discard())
	reader.Load(ctx)

	orders := reader.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected 1 order after reload, got %d", len(orders))
	}
	if orders[0].Total.Amount != 4998 {
		t.Fatalf("total lost in round trip: %d", orders[0].Total.Amount)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Quantity != 2 {
		t.Fatalf("items lost in round trip: %v", orders[0].Items)
	}
}

func TestLoadCorruptRecordSelfHeals(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	if err := store.Set(ctx, StorageKey, []byte("{definitely not an array")); err != nil {
		t.Fatal(err)
	}

	svc := NewService(store, discard())
	svc.Load(ctx)

	if got := svc.Orders(); len(got) != 0 {
		t.Fatalf("expected empty history after corrupt load, got %d", len(got))
	}
	if _, err := store.Get(ctx, StorageKey); !errors.Is(err, kvstore.ErrNotFound) {
		t.Fatalf("corrupt record should have been cleared, got %v", err)
	}
}

type failingStore struct {
	kvstore.Store
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestWriteFailureIsBestEffort(t *testing.T) {
	svc := NewService(failingStore{kvstore.NewMemory()}, discard())

	svc.Add(context.Background(), lines(), brl(4998), domain.Customer{Name: "Ana", Address: "Rua A"})

	if got := svc.Orders(); len(got) != 1 {
		t.Fatalf("write failure must not lose the in-memory order, got %d", len(got))
	}
}

func TestOrdersReturnsCopy(t *testing.T) {
	svc := NewService(kvstore.NewMemory(), discard())
	svc.Add(context.Background(), lines(), brl(4998), domain.Customer{Name: "Ana", Address: "Rua A"})

	orders := svc.Orders()
	orders[0].Customer.Name = "mutated"

	if svc.Orders()[0].Customer.Name != "Ana" {
		t.Fatal("mutating the returned slice leaked into the store")
	}
}
