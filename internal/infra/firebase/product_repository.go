package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type productRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewProductRepository writes the vendor-side companies subtree.
func NewProductRepository(client *Client, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{db: client.DB, logger: logger}
}

func (r *productRepository) CompanyExists(ctx context.Context, companyID string) (bool, error) {
	var name *string
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/companyName", companyID))
	if err := ref.Get(ctx, &name); err != nil {
		return false, errors.Wrap(err, "failed to check company record")
	}
	return name != nil, nil
}

func (r *productRepository) CreateCompany(ctx context.Context, companyID string, company *entity.Company) error {
	ref := r.db.NewRef(fmt.Sprintf("companies/%s", companyID))
	if err := ref.Set(ctx, company); err != nil {
		return errors.Wrap(err, "failed to create company record")
	}
	return nil
}

func (r *productRepository) CreateProduct(ctx context.Context, companyID string, product *entity.Product) (string, error) {
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/products", companyID))
	newRef, err := ref.Push(ctx, product)
	if err != nil {
		return "", errors.Wrap(err, "failed to push product record")
	}
	return newRef.Key, nil
}

func (r *productRepository) GetProduct(ctx context.Context, companyID, productID string) (*entity.Product, error) {
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/products/%s", companyID, productID))

	var product *entity.Product
	if err := ref.Get(ctx, &product); err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}
	if product == nil {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, companyID, productID string, fields map[string]any) error {
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/products/%s", companyID, productID))
	if err := ref.Update(ctx, fields); err != nil {
		return errors.Wrap(err, "failed to update product record")
	}
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, companyID, productID string) error {
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/products/%s", companyID, productID))
	if err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product record")
	}
	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, companyID string) (map[string]*entity.Product, error) {
	var products map[string]*entity.Product
	ref := r.db.NewRef(fmt.Sprintf("companies/%s/products", companyID))
	if err := ref.Get(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "failed to load product list")
	}
	return products, nil
}
