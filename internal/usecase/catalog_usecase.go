// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// CatalogUsecase is the customer-facing browse path.
type CatalogUsecase interface {
	// ListProducts flattens the full company tree into a product list and
	// applies the filter client-side, recomputed per call.
	ListProducts(ctx context.Context, filter *CatalogFilter) ([]*entity.CatalogProduct, error)

	// GetProduct returns a single product with denormalized company identity.
	GetProduct(ctx context.Context, companyID, productID string) (*entity.CatalogProduct, error)
}

// CatalogFilter narrows the flattened product list.
type CatalogFilter struct {
	// Category matches either the main or the sub category exactly.
	Category string `json:"category,omitempty"`

	// Search is a case-insensitive substring match on the product name.
	Search string `json:"search,omitempty"`
}
