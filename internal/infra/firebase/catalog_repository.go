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

type catalogRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewCatalogRepository reads the companies subtree for shopper-facing browsing.
func NewCatalogRepository(client *Client, logger *slog.Logger) repository.CatalogRepository {
	return &catalogRepository{db: client.DB, logger: logger}
}

func (r *catalogRepository) ListCompanies(ctx context.Context) (map[string]*entity.Company, error) {
	var companies map[string]*entity.Company
	if err := r.db.NewRef("companies").Get(ctx, &companies); err != nil {
		return nil, errors.Wrap(err, "failed to load companies subtree")
	}
	return companies, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, companyID, productID string) (*entity.Product, error) {
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
