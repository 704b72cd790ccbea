package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorFixture struct {
	service     usecase.VendorUsecase
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	storage     *mockSvc.MockStorageService
}

func createTestVendorService(t *testing.T) *vendorFixture {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storage := mockSvc.NewMockStorageService(t)

	service := NewVendorService(productRepo, orderRepo, storage, newDiscardLogger())

	return &vendorFixture{
		service:     service,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storage:     storage,
	}
}

func TestVendorService_CreateProduct_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendorUID := "vendor-1"

	fx.productRepo.EXPECT().
		CreateProduct(ctx, vendorUID, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, companyID string, product *entity.Product) {
			assert.Equal(t, "Organic Spinach", product.ProductName)
			assert.Equal(t, 60.0, product.OriginalPrice)
			assert.False(t, product.CreatedAt.IsZero())
		}).
		Return("push-id-1", nil)

	productID, err := fx.service.CreateProduct(ctx, vendorUID, &usecase.ProductInput{
		ProductName:   "Organic Spinach",
		OriginalPrice: 60,
		DiscountPrice: 45,
		StockQuantity: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "push-id-1", productID)
}

func TestVendorService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendorUID := "vendor-1"

	fx.productRepo.EXPECT().
		GetProduct(ctx, vendorUID, "prod-1").
		Return(&entity.Product{ProductName: "Organic Spinach"}, nil)

	price := 50.0
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, vendorUID, "prod-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, companyID, productID string, fields map[string]any) {
			assert.Equal(t, 50.0, fields["discountPrice"])
			assert.Contains(t, fields, "updatedAt")

			// Untouched fields must not appear in the merge.
			assert.NotContains(t, fields, "productName")
			assert.NotContains(t, fields, "stockQuantity")
		}).
		Return(nil)

	err := fx.service.UpdateProduct(ctx, vendorUID, "prod-1", &usecase.ProductUpdateInput{
		DiscountPrice: &price,
	})
	assert.NoError(t, err)
}

func TestVendorService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		GetProduct(ctx, "vendor-1", "prod-gone").
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.UpdateProduct(ctx, "vendor-1", "prod-gone", &usecase.ProductUpdateInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVendorService_ListProducts_NewestFirst(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.productRepo.EXPECT().
		ListProducts(ctx, "vendor-1").
		Return(map[string]*entity.Product{
			"prod-old": {ProductName: "Old", CreatedAt: base},
			"prod-new": {ProductName: "New", CreatedAt: base.Add(time.Hour)},
		}, nil)

	products, err := fx.service.ListProducts(ctx, "vendor-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "prod-new", products[0].ProductID)
	assert.Equal(t, "prod-old", products[1].ProductID)
}

func TestVendorService_AddProductPhoto_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendorUID := "vendor-1"
	body := strings.NewReader("png-bytes")

	fx.productRepo.EXPECT().
		GetProduct(ctx, vendorUID, "prod-1").
		Return(&entity.Product{
			ProductName:      "Organic Spinach",
			ProductPhotoURLs: []string{"https://cdn.example.com/old.png"},
		}, nil)
	fx.storage.EXPECT().
		Upload(ctx, service.FolderProductPhotos, "spinach.png", "image/png", body).
		Return("https://cdn.example.com/new.png", nil)
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, vendorUID, "prod-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, companyID, productID string, fields map[string]any) {
			assert.Equal(t, []string{
				"https://cdn.example.com/old.png",
				"https://cdn.example.com/new.png",
			}, fields["productPhotoUrls"])
		}).
		Return(nil)

	url, err := fx.service.AddProductPhoto(ctx, vendorUID, "prod-1", &usecase.FileUpload{
		Filename:    "spinach.png",
		ContentType: "image/png",
		Body:        body,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", url)
}

func TestVendorService_AddProductPhoto_ProductMissing(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		GetProduct(ctx, "vendor-1", "prod-gone").
		Return(nil, repository.ErrProductNotFound)

	url, err := fx.service.AddProductPhoto(ctx, "vendor-1", "prod-gone", &usecase.FileUpload{
		Filename: "spinach.png",
		Body:     strings.NewReader(""),
	})
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVendorService_Orders_FiltersToOwnProducts(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.productRepo.EXPECT().
		ListProducts(ctx, "vendor-1").
		Return(map[string]*entity.Product{
			"prod-1": {ProductName: "Organic Spinach"},
		}, nil)
	fx.orderRepo.EXPECT().
		ListAll(ctx).
		Return(map[string][]*entity.Order{
			"user-1": {
				{
					ID: "order-1",
					Items: []entity.CartItem{
						{ProductID: "prod-1", Quantity: 2},
						{ProductID: "prod-other", Quantity: 1},
					},
					Status:       entity.OrderStatusPending,
					PurchaseTime: base,
				},
			},
			"user-2": {
				{
					ID:           "order-2",
					Items:        []entity.CartItem{{ProductID: "prod-other", Quantity: 3}},
					PurchaseTime: base.Add(time.Hour),
				},
				{
					ID:           "order-3",
					Items:        []entity.CartItem{{ProductID: "prod-1", Quantity: 1}},
					PurchaseTime: base.Add(2 * time.Hour),
				},
			},
		}, nil)

	orders, err := fx.service.Orders(ctx, "vendor-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest purchase first, foreign items dropped.
	assert.Equal(t, "order-3", orders[0].OrderID)
	assert.Equal(t, "user-2", orders[0].CustomerUID)
	assert.Equal(t, "order-1", orders[1].OrderID)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, "prod-1", orders[1].Items[0].ProductID)
}

func TestVendorService_Orders_ScanError(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListProducts(ctx, "vendor-1").
		Return(map[string]*entity.Product{}, nil)
	fx.orderRepo.EXPECT().
		ListAll(ctx).
		Return(nil, errors.New("tree unavailable"))

	orders, err := fx.service.Orders(ctx, "vendor-1")
	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "failed to scan orders")
}

func TestAggregateVendorOrders_NoMatches(t *testing.T) {
	own := map[string]struct{}{"prod-1": {}}
	all := map[string][]*entity.Order{
		"user-1": {
			{ID: "order-1", Items: []entity.CartItem{{ProductID: "prod-other"}}},
		},
	}

	assert.Empty(t, AggregateVendorOrders(own, all))
}

func TestVendorService_DeleteProduct(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		DeleteProduct(ctx, "vendor-1", "prod-1").
		Return(nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, "vendor-1", "prod-1"))
}
