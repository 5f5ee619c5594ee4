package app

import (
	"testing"

	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
)

func product(id int, cents int64) catalogdomain.Product {
	return catalogdomain.Product{
		ID:    id,
		Name:  "p",
		Price: catalogdomain.Money{Currency: "BRL", Amount: cents},
	}
}

func TestAddNeverDuplicatesLines(t *testing.T) {
	svc := NewService()
	p := product(1, 2499)

	for i := 0; i < 5; i++ {
		svc.Add(p)
	}

	lines := svc.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	svc := NewService()
	svc.Add(product(2, 100))
	svc.Add(product(1, 100))
	svc.Add(product(2, 100))

	lines := svc.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != 2 || lines[1].Product.ID != 1 {
		t.Fatalf("order broken: %v", lines)
	}
}

func TestDerivedAggregates(t *testing.T) {
	svc := NewService()
	svc.Add(product(1, 2499))
	svc.Add(product(1, 2499))
	svc.Add(product(3, 1999))

	if got := svc.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
	if got := svc.Total(); got.Amount != 6997 {
		t.Fatalf("expected total 6997 cents, got %d", got.Amount)
	}

	lines := svc.Lines()
	if len(lines) != 2 || lines[0].Quantity != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	svc := NewService()
	svc.Add(product(1, 100))

	svc.Remove(42)

	if got := svc.ItemCount(); got != 1 {
		t.Fatalf("expected item count 1, got %d", got)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	byZero := NewService()
	byRemove := NewService()
	for _, svc := range []*Service{byZero, byRemove} {
		svc.Add(product(1, 100))
		svc.Add(product(2, 200))
	}

	byZero.SetQuantity(1, 0)
	byRemove.Remove(1)

	a, b := byZero.Lines(), byRemove.Lines()
	if len(a) != len(b) || len(a) != 1 {
		t.Fatalf("expected equivalent single-line carts, got %v vs %v", a, b)
	}
	if a[0].Product.ID != b[0].Product.ID {
		t.Fatalf("diverged: %v vs %v", a, b)
	}
}

func TestSetQuantity(t *testing.T) {
	t.Run("updates existing line", func(t *testing.T) {
		svc := NewService()
		svc.Add(product(1, 100))

		svc.SetQuantity(1, 7)

		if got := svc.ItemCount(); got != 7 {
			t.Fatalf("expected 7, got %d", got)
		}
	})

	t.Run("negative removes line", func(t *testing.T) {
		svc := NewService()
		svc.Add(product(1, 100))

		svc.SetQuantity(1, -3)

		if got := len(svc.Lines()); got != 0 {
			t.Fatalf("expected empty cart, got %d lines", got)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		svc := NewService()
		svc.SetQuantity(9, 5)

		if got := len(svc.Lines()); got != 0 {
			t.Fatalf("expected empty cart, got %d lines", got)
		}
	})
}

func TestClearResetsAggregatesButNotOpenFlag(t *testing.T) {
	svc := NewService()
	svc.Add(product(1, 2499))
	svc.Toggle()

	svc.Clear()

	if got := svc.ItemCount(); got != 0 {
		t.Fatalf("expected item count 0, got %d", got)
	}
	if got := svc.Total(); got.Amount != 0 {
		t.Fatalf("expected total 0, got %d", got.Amount)
	}
	if !svc.IsOpen() {
		t.Fatal("clear must not close the cart sidebar")
	}
}

func TestToggle(t *testing.T) {
	svc := NewService()
	if svc.IsOpen() {
		t.Fatal("cart starts closed")
	}
	svc.Toggle()
	if !svc.IsOpen() {
		t.Fatal("expected open after toggle")
	}
	svc.Toggle()
	if svc.IsOpen() {
		t.Fatal("expected closed after second toggle")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	svc := NewService()
	svc.Add(product(1, 100))

	lines := svc.Lines()
	lines[0].Quantity = 99

	if got := svc.ItemCount(); got != 1 {
		t.Fatalf("mutating the snapshot leaked into the store: %d", got)
	}
}
