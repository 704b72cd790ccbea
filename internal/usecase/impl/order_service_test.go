package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) *orderFixture {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(orderRepo, qrService, newDiscardLogger())

	return &orderFixture{
		service:   service,
		orderRepo: orderRepo,
		qrService: qrService,
	}
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return([]*entity.Order{
			{ID: "order-old", PurchaseTime: base},
			{ID: "order-new", PurchaseTime: base.Add(time.Hour)},
		}, nil)

	orders, err := fx.service.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-new", orders[0].ID)
	assert.Equal(t, "order-old", orders[1].ID)
}

func TestOrderService_ListOrders_Error(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return(nil, errors.New("tree unavailable"))

	orders, err := fx.service.ListOrders(ctx, "user-1")
	assert.Error(t, err)
	assert.Nil(t, orders)
}

func TestOrderService_OrderQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Get(ctx, "user-1", "order-1").
		Return(&entity.Order{ID: "order-1"}, nil)
	fx.qrService.EXPECT().
		GenerateOrderQR("order-1").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.OrderQR(ctx, "user-1", "order-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_OrderQR_NotOwned(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	// The order exists under another user; the lookup scoped to this uid
	// must miss.
	fx.orderRepo.EXPECT().
		Get(ctx, "user-2", "order-1").
		Return(nil, repository.ErrOrderNotFound)

	png, err := fx.service.OrderQR(ctx, "user-2", "order-1")
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_OrderQR_GenerationError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Get(ctx, "user-1", "order-1").
		Return(&entity.Order{ID: "order-1"}, nil)
	fx.qrService.EXPECT().
		GenerateOrderQR("order-1").
		Return(nil, errors.New("encode failed"))

	png, err := fx.service.OrderQR(ctx, "user-1", "order-1")
	assert.Nil(t, png)
	assert.Contains(t, err.Error(), "failed to generate order QR")
}
