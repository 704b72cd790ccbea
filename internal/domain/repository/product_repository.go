package repository

import (
	"context"

	"harvest/internal/domain/entity"
)

// ProductRepository is the vendor-side write path, scoped to the vendor's
// own companies/{companyID} subtree.
type ProductRepository interface {
	// CompanyExists reports whether a company record exists for the ID.
	CompanyExists(ctx context.Context, companyID string) (bool, error)

	// CreateCompany writes the company record skeleton at vendor registration.
	CreateCompany(ctx context.Context, companyID string, company *entity.Company) error

	// CreateProduct appends a product under the company with a generated
	// push ID and returns that ID.
	CreateProduct(ctx context.Context, companyID string, product *entity.Product) (string, error)

	// GetProduct reads one of the vendor's own products.
	GetProduct(ctx context.Context, companyID, productID string) (*entity.Product, error)

	// UpdateProduct merges the given fields into the product record.
	UpdateProduct(ctx context.Context, companyID, productID string, fields map[string]any) error

	// DeleteProduct removes the product subtree.
	DeleteProduct(ctx context.Context, companyID, productID string) error

	// ListProducts reads the vendor's product map keyed by push ID.
	ListProducts(ctx context.Context, companyID string) (map[string]*entity.Product, error)
}
