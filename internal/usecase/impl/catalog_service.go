// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListProducts reads the full company tree and flattens it per call.
// There is no incremental diffing; filtering happens after flattening.
func (srv *catalogService) ListProducts(ctx context.Context, filter *usecase.CatalogFilter) ([]*entity.CatalogProduct, error) {
	companies, err := srv.catalogRepo.ListCompanies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	products := FlattenCompanies(companies)
	products = FilterProducts(products, filter)

	srv.logger.Debug("catalog listed",
		slog.Int("companies", len(companies)),
		slog.Int("products", len(products)))

	return products, nil
}

// GetProduct returns one product with denormalized company identity.
func (srv *catalogService) GetProduct(ctx context.Context, companyID, productID string) (*entity.CatalogProduct, error) {
	companies, err := srv.catalogRepo.ListCompanies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	company, ok := companies[companyID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "company not found")
	}

	product, ok := company.Products[productID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
	}

	return newCatalogProduct(companyID, company, productID, product), nil
}

// FlattenCompanies turns companies[*].products[*] into a flat list with
// company name and logo attached to each entry. Output order is stable:
// company ID, then product ID.
func FlattenCompanies(companies map[string]*entity.Company) []*entity.CatalogProduct {
	flat := make([]*entity.CatalogProduct, 0, len(companies))

	companyIDs := make([]string, 0, len(companies))
	for id := range companies {
		companyIDs = append(companyIDs, id)
	}
	sort.Strings(companyIDs)

	for _, companyID := range companyIDs {
		company := companies[companyID]
		if company == nil {
			continue
		}

		productIDs := make([]string, 0, len(company.Products))
		for id := range company.Products {
			productIDs = append(productIDs, id)
		}
		sort.Strings(productIDs)

		for _, productID := range productIDs {
			product := company.Products[productID]
			if product == nil {
				continue
			}
			flat = append(flat, newCatalogProduct(companyID, company, productID, product))
		}
	}

	return flat
}

// FilterProducts applies the category and search filter after flattening.
func FilterProducts(products []*entity.CatalogProduct, filter *usecase.CatalogFilter) []*entity.CatalogProduct {
	if filter == nil || (filter.Category == "" && filter.Search == "") {
		return products
	}

	needle := strings.ToLower(filter.Search)
	kept := make([]*entity.CatalogProduct, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && !p.Product.MatchesCategory(filter.Category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Product.ProductName), needle) {
			continue
		}
		kept = append(kept, p)
	}

	return kept
}

func newCatalogProduct(companyID string, company *entity.Company, productID string, product *entity.Product) *entity.CatalogProduct {
	logo := company.CompanyPhotoURL
	if logo == "" {
		logo = entity.PlaceholderPhotoURL
	}

	return &entity.CatalogProduct{
		CompanyID:   companyID,
		CompanyName: company.CompanyName,
		CompanyLogo: logo,
		ProductID:   productID,
		Product:     product,
	}
}
