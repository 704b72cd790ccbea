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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteFixture struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	catalogRepo  *mockRepo.MockCatalogRepository
}

func createTestFavoriteService(t *testing.T) *favoriteFixture {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewFavoriteService(favoriteRepo, catalogRepo, newDiscardLogger())

	return &favoriteFixture{
		service:      service,
		favoriteRepo: favoriteRepo,
		catalogRepo:  catalogRepo,
	}
}

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.favoriteRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		Return(nil, repository.ErrFavoriteNotFound)
	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "company-1", "prod-1").
		Return(&entity.Product{ProductName: "Raw Honey", OriginalPrice: 250}, nil)
	fx.favoriteRepo.EXPECT().
		Set(ctx, uid, mock.AnythingOfType("*entity.FavoriteItem")).
		Run(func(ctx context.Context, uid string, item *entity.FavoriteItem) {
			assert.Equal(t, "prod-1", item.ProductID)
			assert.Equal(t, "Raw Honey", item.ProductName)
			assert.Equal(t, 250.0, item.Price)
		}).
		Return(nil)

	favorited, err := fx.service.Toggle(ctx, uid, &usecase.ToggleFavoriteInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
	})
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.favoriteRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		Return(&entity.FavoriteItem{ProductID: "prod-1"}, nil)
	fx.favoriteRepo.EXPECT().
		Remove(ctx, uid, "prod-1").
		Return(nil)

	favorited, err := fx.service.Toggle(ctx, uid, &usecase.ToggleFavoriteInput{
		CompanyID: "company-1",
		ProductID: "prod-1",
	})
	require.NoError(t, err)
	assert.False(t, favorited)
}

// A double toggle must land back on the original membership state.
func TestFavoriteService_Toggle_RoundTrip(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	uid := "user-1"
	store := map[string]*entity.FavoriteItem{}

	fx.favoriteRepo.EXPECT().
		Get(ctx, uid, "prod-1").
		RunAndReturn(func(ctx context.Context, uid, productID string) (*entity.FavoriteItem, error) {
			if item, ok := store[productID]; ok {
				return item, nil
			}
			return nil, repository.ErrFavoriteNotFound
		}).
		Twice()
	fx.favoriteRepo.EXPECT().
		Set(ctx, uid, mock.AnythingOfType("*entity.FavoriteItem")).
		RunAndReturn(func(ctx context.Context, uid string, item *entity.FavoriteItem) error {
			store[item.ProductID] = item
			return nil
		}).
		Once()
	fx.favoriteRepo.EXPECT().
		Remove(ctx, uid, "prod-1").
		RunAndReturn(func(ctx context.Context, uid, productID string) error {
			delete(store, productID)
			return nil
		}).
		Once()
	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "company-1", "prod-1").
		Return(&entity.Product{ProductName: "Raw Honey", OriginalPrice: 250}, nil).
		Once()

	input := &usecase.ToggleFavoriteInput{CompanyID: "company-1", ProductID: "prod-1"}

	favorited, err := fx.service.Toggle(ctx, uid, input)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = fx.service.Toggle(ctx, uid, input)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.Empty(t, store)
}

func TestFavoriteService_Toggle_ProductMissing(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().
		Get(ctx, "user-1", "prod-gone").
		Return(nil, repository.ErrFavoriteNotFound)
	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "company-1", "prod-gone").
		Return(nil, repository.ErrProductNotFound)

	favorited, err := fx.service.Toggle(ctx, "user-1", &usecase.ToggleFavoriteInput{
		CompanyID: "company-1",
		ProductID: "prod-gone",
	})
	assert.False(t, favorited)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFavoriteService_List_NewestFirst(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.favoriteRepo.EXPECT().
		List(ctx, "user-1").
		Return(map[string]*entity.FavoriteItem{
			"prod-old": {ProductID: "prod-old", AddedAt: base},
			"prod-new": {ProductID: "prod-new", AddedAt: base.Add(time.Hour)},
		}, nil)

	items, err := fx.service.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "prod-new", items[0].ProductID)
	assert.Equal(t, "prod-old", items[1].ProductID)
}
