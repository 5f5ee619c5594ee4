package adapter

import (
	"context"

	catalogapp "github.com/vibevapes/storefront/internal/catalog/app"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
)

// CatalogReader exposes the catalog service through the quiz's Catalog port.
type CatalogReader struct {
	svc *catalogapp.Service
}

func NewCatalogReader(svc *catalogapp.Service) *CatalogReader {
	return &CatalogReader{svc: svc}
}

func (c *CatalogReader) List(ctx context.Context) ([]catalogdomain.Product, error) {
	return c.svc.ListProducts(ctx)
}
