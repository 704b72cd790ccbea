package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockRepo "harvest/internal/mocks/repository"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompanies() map[string]*entity.Company {
	return map[string]*entity.Company{
		"company-b": {
			CompanyName:     "Green Valley",
			CompanyPhotoURL: "https://cdn.example.com/green-valley.png",
			Products: map[string]*entity.Product{
				"prod-2": {
					ProductName:   "Organic Spinach",
					OriginalPrice: 60,
					Categories:    []entity.Category{{Main: "Vegetables", Sub: "Leafy Greens"}},
				},
				"prod-1": {
					ProductName:   "Cherry Tomatoes",
					OriginalPrice: 80,
					Categories:    []entity.Category{{Main: "Vegetables"}},
				},
			},
		},
		"company-a": {
			CompanyName: "Hill Apiary",
			Products: map[string]*entity.Product{
				"prod-3": {
					ProductName:   "Raw Honey",
					OriginalPrice: 300,
					DiscountPrice: 250,
					Categories:    []entity.Category{{Main: "Pantry"}},
				},
			},
		},
	}
}

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCatalogRepository) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalogRepo, newDiscardLogger())

	return service, catalogRepo
}

func TestCatalogService_ListProducts_FlattensInStableOrder(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	products, err := service.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Company ID order, then product ID order within a company.
	assert.Equal(t, "prod-3", products[0].ProductID)
	assert.Equal(t, "prod-1", products[1].ProductID)
	assert.Equal(t, "prod-2", products[2].ProductID)
	assert.Equal(t, "Hill Apiary", products[0].CompanyName)
	assert.Equal(t, "Green Valley", products[1].CompanyName)
}

func TestCatalogService_ListProducts_FilterByCategory(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	products, err := service.ListProducts(ctx, &usecase.CatalogFilter{Category: "Leafy Greens"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Organic Spinach", products[0].Product.ProductName)
}

func TestCatalogService_ListProducts_FilterBySearch(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	products, err := service.ListProducts(ctx, &usecase.CatalogFilter{Search: "honey"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-3", products[0].ProductID)
}

func TestCatalogService_ListProducts_RepoError(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(nil, errors.New("tree unavailable"))

	products, err := service.ListProducts(ctx, nil)
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to list companies")
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	product, err := service.GetProduct(ctx, "company-a", "prod-3")
	require.NoError(t, err)
	assert.Equal(t, "Hill Apiary", product.CompanyName)
	assert.Equal(t, "Raw Honey", product.Product.ProductName)
	assert.Equal(t, 250.0, product.Product.Price())
}

func TestCatalogService_GetProduct_MissingCompany(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	product, err := service.GetProduct(ctx, "company-gone", "prod-3")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_GetProduct_MissingProduct(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalogRepo.EXPECT().
		ListCompanies(ctx).
		Return(testCompanies(), nil)

	product, err := service.GetProduct(ctx, "company-a", "prod-gone")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFlattenCompanies_PlaceholderLogo(t *testing.T) {
	products := FlattenCompanies(testCompanies())

	for _, p := range products {
		if p.CompanyID == "company-a" {
			assert.Equal(t, entity.PlaceholderPhotoURL, p.CompanyLogo)
		}
		if p.CompanyID == "company-b" {
			assert.Equal(t, "https://cdn.example.com/green-valley.png", p.CompanyLogo)
		}
	}
}

func TestFlattenCompanies_SkipsNilNodes(t *testing.T) {
	companies := map[string]*entity.Company{
		"company-a": nil,
		"company-b": {
			CompanyName: "Green Valley",
			Products: map[string]*entity.Product{
				"prod-1": nil,
				"prod-2": {ProductName: "Organic Spinach"},
			},
		},
	}

	products := FlattenCompanies(companies)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-2", products[0].ProductID)
}

func TestFilterProducts_NilFilterPassesThrough(t *testing.T) {
	products := FlattenCompanies(testCompanies())

	assert.Equal(t, products, FilterProducts(products, nil))
	assert.Equal(t, products, FilterProducts(products, &usecase.CatalogFilter{}))
}

func TestFilterProducts_CategoryAndSearchCombined(t *testing.T) {
	products := FlattenCompanies(testCompanies())

	kept := FilterProducts(products, &usecase.CatalogFilter{Category: "Vegetables", Search: "tomato"})
	require.Len(t, kept, 1)
	assert.Equal(t, "Cherry Tomatoes", kept[0].Product.ProductName)
}
