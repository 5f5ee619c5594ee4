package app

import (
	"context"
	"errors"
	"testing"

	"github.com/vibevapes/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products []domain.Product
}

func (f fakeRepo) Get(_ context.Context, id int) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (f fakeRepo) List(_ context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Cosmic Mango", Flavors: []string{"manga madura", "maracujá"}},
		{ID: 2, Name: "Cyber Grape", Flavors: []string{"uva caramelizada"}},
		{ID: 3, Name: "Glacial Mint", Flavors: []string{"menta ártica"}},
	}
}

func TestGetProduct(t *testing.T) {
	svc := NewService(fakeRepo{products: testProducts()})

	t.Run("invalid id -> invalid input", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 99)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("known id", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Cyber Grape" {
			t.Fatalf("got %q", p.Name)
		}
	})
}

func TestSearchProducts(t *testing.T) {
	svc := NewService(fakeRepo{products: testProducts()})

	t.Run("empty query matches nothing", func(t *testing.T) {
		got, err := svc.SearchProducts(context.Background(), "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %d", len(got))
		}
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got, err := svc.SearchProducts(context.Background(), "GRAPE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("matches flavor label", func(t *testing.T) {
		got, err := svc.SearchProducts(context.Background(), "manga")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, err := svc.SearchProducts(context.Background(), "banana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})
}
