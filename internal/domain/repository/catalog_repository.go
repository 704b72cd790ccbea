// Package repository defines the interfaces for the document-tree
// persistence layer. These interfaces act as a contract between the
// domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrProductNotFound is returned when a product path does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the storefront read path over the companies tree.
type CatalogRepository interface {
	// ListCompanies reads the full companies subtree in one shot.
	// There is no pagination; every caller re-reads the whole tree.
	ListCompanies(ctx context.Context) (map[string]*entity.Company, error)

	// GetProduct reads a single product record.
	GetProduct(ctx context.Context, companyID, productID string) (*entity.Product, error)
}
