package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestCartService(t *testing.T) *cartFixture {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewCartService(cartRepo, catalogRepo, profileRepo, newDiscardLogger())

	return &cartFixture{
		service:     service,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.profileRepo.EXPECT().
		Get(ctx, uid).
		Return(&entity.UserProfile{Name: "Asha"}, nil)
	fx.cartRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		Return(nil, repository.ErrCartItemNotFound)
	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "company-1", "prod-1").
		Return(&entity.Product{
			ProductName:   "Organic Spinach",
			OriginalPrice: 60,
			DiscountPrice: 45,
		}, nil)
	fx.cartRepo.EXPECT().
		Create(ctx, uid, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddToCart(ctx, uid, &usecase.AddToCartInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-1", item.ProductID)
	assert.Equal(t, "Organic Spinach", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 45.0, item.Price)
	assert.False(t, item.AddedAt.IsZero())
}

func TestCartService_AddToCart_Duplicate(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.profileRepo.EXPECT().
		Get(ctx, uid).
		Return(&entity.UserProfile{}, nil)
	fx.cartRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		Return(&entity.CartItem{ProductID: "prod-1"}, nil)

	item, err := fx.service.AddToCart(ctx, uid, &usecase.AddToCartInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
		Quantity:  1,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInCart)
}

func TestCartService_AddToCart_NoProfile(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	item, err := fx.service.AddToCart(ctx, "user-1", &usecase.AddToCartInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
		Quantity:  1,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
}

func TestCartService_AddToCart_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(&entity.UserProfile{}, nil)

	item, err := fx.service.AddToCart(ctx, "user-1", &usecase.AddToCartInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
		Quantity:  0,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddToCart_ProductMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.profileRepo.EXPECT().
		Get(ctx, uid).
		Return(&entity.UserProfile{}, nil)
	fx.cartRepo.EXPECT().
		Get(ctx, uid, "prod-gone").
		Return(nil, repository.ErrCartItemNotFound)
	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "company-1", "prod-gone").
		Return(nil, repository.ErrProductNotFound)

	item, err := fx.service.AddToCart(ctx, uid, &usecase.AddToCartInput{
		CompanyID: "company-1",
		ProductID: "prod-gone",
		Quantity:  1,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_UpdateQuantity_BelowOneIsDropped(t *testing.T) {
	fx := createTestCartService(t)

	// No repository expectations: a quantity below 1 must not touch the tree.
	err := fx.service.UpdateQuantity(context.Background(), "user-1", "prod-1", 0)
	assert.NoError(t, err)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.cartRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		Return(&entity.CartItem{ProductID: "prod-1", Quantity: 1}, nil)
	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, uid, "prod-1", 5).
		Return(nil)

	err := fx.service.UpdateQuantity(ctx, uid, "prod-1", 5)
	assert.NoError(t, err)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Get(ctx, "user-1", "prod-1").
		Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.UpdateQuantity(ctx, "user-1", "prod-1", 3)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_GetCart_SortedWithSubtotal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(map[string]*entity.CartItem{
			"prod-b": {ProductID: "prod-b", Price: 30, Quantity: 1, AddedAt: base.Add(time.Minute)},
			"prod-a": {ProductID: "prod-a", Price: 45, Quantity: 2, AddedAt: base},
		}, nil)

	view, err := fx.service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "prod-a", view.Items[0].ProductID)
	assert.Equal(t, "prod-b", view.Items[1].ProductID)
	assert.Equal(t, 120.0, view.Subtotal)
}

func TestCartService_GetCart_ListError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(nil, errors.New("tree unavailable"))

	view, err := fx.service.GetCart(ctx, "user-1")
	assert.Error(t, err)
	assert.Nil(t, view)
	assert.Contains(t, err.Error(), "failed to list cart")
}

func TestSubtotal_DecimalArithmetic(t *testing.T) {
	items := []*entity.CartItem{
		{Price: 0.1, Quantity: 3},
		{Price: 19.99, Quantity: 2},
	}

	// 0.3 + 39.98 must not pick up float drift.
	assert.Equal(t, 40.28, Subtotal(items))
}

func TestSubtotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
}
