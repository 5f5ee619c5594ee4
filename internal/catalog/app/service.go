package app

import (
	"context"
	"errors"
	"strings"

	"github.com/vibevapes/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// SearchProducts matches the query against product names and flavor labels,
// case-insensitively. An empty query matches nothing.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Product
	for _, p := range products {
		if matches(p, query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matches(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, f := range p.Flavors {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
