package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	service     usecase.CheckoutUsecase
	cartRepo    *mockRepo.MockCartRepository
	profileRepo *mockRepo.MockProfileRepository
	orderRepo   *mockRepo.MockOrderRepository
	payment     *mockSvc.MockPaymentService
	locator     *mockSvc.MockLocator
	publisher   *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) *checkoutFixture {
	cartRepo := mockRepo.NewMockCartRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	payment := mockSvc.NewMockPaymentService(t)
	locator := mockSvc.NewMockLocator(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCheckoutService(
		cartRepo,
		profileRepo,
		orderRepo,
		payment,
		locator,
		publisher,
		newTestConfig(99),
		newDiscardLogger(),
	)

	return &checkoutFixture{
		service:     service,
		cartRepo:    cartRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		payment:     payment,
		locator:     locator,
		publisher:   publisher,
	}
}

func validAddress() entity.DeliveryAddress {
	return entity.DeliveryAddress{
		Name:    "Asha",
		Phone:   "9876543210",
		Street:  "12 Main Road",
		City:    "Mysore",
		State:   "Karnataka",
		Pincode: "570001",
	}
}

func testCartRows() map[string]*entity.CartItem {
	return map[string]*entity.CartItem{
		"prod-1": {
			ProductID:   "prod-1",
			ProductName: "Organic Spinach",
			Quantity:    2,
			Price:       100,
			AddedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

// beginCheckout runs Begin with a one-item cart and returns the order
// reference handed to the payment gateway.
func beginCheckout(t *testing.T, fx *checkoutFixture, uid string) string {
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, uid).
		Return(&entity.UserProfile{Name: "Asha", Lat: 12.9, Lng: 77.6}, nil).
		Once()
	fx.cartRepo.EXPECT().
		List(ctx, uid).
		Return(testCartRows(), nil).
		Once()

	var orderRef string
	fx.payment.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("string"), 299.0, service.CustomerDetails{
			Name:  "Asha",
			Phone: "9876543210",
		}).
		Run(func(ctx context.Context, ref string, grossAmount float64, customer service.CustomerDetails) {
			orderRef = ref
		}).
		Return(&service.PaymentSession{Token: "snap-token", RedirectURL: "https://pay.example.com/snap-token"}, nil).
		Once()

	out, err := fx.service.Begin(ctx, uid, &usecase.BeginCheckoutInput{Address: validAddress()})
	require.NoError(t, err)
	require.NotEmpty(t, orderRef)
	require.Equal(t, orderRef, out.OrderRef)

	return orderRef
}

func TestCheckoutService_Begin_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	uid := "user-1"

	fx.profileRepo.EXPECT().
		Get(ctx, uid).
		Return(&entity.UserProfile{Name: "Asha"}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, uid).
		Return(testCartRows(), nil)
	fx.payment.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("string"), 299.0, mock.AnythingOfType("service.CustomerDetails")).
		Return(&service.PaymentSession{Token: "snap-token", RedirectURL: "https://pay.example.com/snap-token"}, nil)

	out, err := fx.service.Begin(ctx, uid, &usecase.BeginCheckoutInput{Address: validAddress()})
	require.NoError(t, err)
	assert.Equal(t, 200.0, out.Subtotal)
	assert.Equal(t, 99.0, out.Shipping)
	assert.Equal(t, 299.0, out.Total)
	assert.Equal(t, "snap-token", out.Token)
	assert.NotEmpty(t, out.OrderRef)
}

func TestCheckoutService_Begin_NoProfile(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	out, err := fx.service.Begin(ctx, "user-1", &usecase.BeginCheckoutInput{Address: validAddress()})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
}

func TestCheckoutService_Begin_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(&entity.UserProfile{}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(map[string]*entity.CartItem{}, nil)

	out, err := fx.service.Begin(ctx, "user-1", &usecase.BeginCheckoutInput{Address: validAddress()})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Begin_InvalidAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(&entity.UserProfile{}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(testCartRows(), nil)

	address := validAddress()
	address.Phone = "123"

	out, err := fx.service.Begin(ctx, "user-1", &usecase.BeginCheckoutInput{Address: address})
	assert.Nil(t, out)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "phone")
}

func TestCheckoutService_Cancel(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	// A foreign uid must not be able to drop the session.
	err := fx.service.Cancel(ctx, "user-2", orderRef)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)

	err = fx.service.Cancel(ctx, "user-1", orderRef)
	assert.NoError(t, err)

	// The session is gone after a successful cancel.
	err = fx.service.Cancel(ctx, "user-1", orderRef)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
}

func TestCheckoutService_HandlePaymentNotification_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{OrderRef: orderRef, Verdict: service.VerdictSuccess}, nil)
	fx.locator.EXPECT().
		Locate(mock.Anything).
		Return(orb.Point{77.61, 12.91}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(testCartRows(), nil).
		Once()

	var committed *entity.Order
	fx.orderRepo.EXPECT().
		Append(ctx, "user-1", mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, uid string, order *entity.Order) {
			committed = order
		}).
		Return("push-id-1", nil)
	fx.cartRepo.EXPECT().
		Clear(ctx, "user-1").
		Return(nil)

	var published *service.OrderPlacedEvent
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(ctx context.Context, event *service.OrderPlacedEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.HandlePaymentNotification(ctx, orderRef)
	require.NoError(t, err)

	require.NotNil(t, committed)
	assert.Equal(t, 200.0, committed.Subtotal)
	assert.Equal(t, 99.0, committed.Shipping)
	assert.Equal(t, 299.0, committed.Total)
	assert.Equal(t, entity.OrderStatusPending, committed.Status)
	require.Len(t, committed.Items, 1)
	assert.Equal(t, "prod-1", committed.Items[0].ProductID)

	// The address picked up the profile coordinates at Begin; the order
	// location came from the device.
	assert.Equal(t, 12.9, committed.DeliveryAddress.Lat)
	assert.Equal(t, 77.6, committed.DeliveryAddress.Lng)
	assert.Equal(t, entity.GeoPoint{Lat: 12.91, Lng: 77.61}, committed.OrderLocation)

	require.NotNil(t, published)
	assert.Equal(t, "push-id-1", published.OrderID)
	assert.Equal(t, "user-1", published.UID)
	assert.Equal(t, []string{"prod-1"}, published.ProductIDs)
}

func TestCheckoutService_HandlePaymentNotification_LocatorFallback(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{OrderRef: orderRef, Verdict: service.VerdictSuccess}, nil)
	fx.locator.EXPECT().
		Locate(mock.Anything).
		Return(orb.Point{}, errors.New("geolocation unavailable"))
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(testCartRows(), nil).
		Once()

	var committed *entity.Order
	fx.orderRepo.EXPECT().
		Append(ctx, "user-1", mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, uid string, order *entity.Order) {
			committed = order
		}).
		Return("push-id-1", nil)
	fx.cartRepo.EXPECT().
		Clear(ctx, "user-1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	err := fx.service.HandlePaymentNotification(ctx, orderRef)
	require.NoError(t, err)

	require.NotNil(t, committed)
	assert.Equal(t, entity.GeoPoint{Lat: 12.9, Lng: 77.6}, committed.OrderLocation)
}

func TestCheckoutService_HandlePaymentNotification_Failure(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{
			OrderRef:    orderRef,
			Verdict:     service.VerdictFailure,
			Description: "card declined",
		}, nil)

	err := fx.service.HandlePaymentNotification(ctx, orderRef)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_FAILED", appErr.ErrorCode())
	assert.Equal(t, "card declined", appErr.Details())
}

func TestCheckoutService_HandlePaymentNotification_PendingThenSettlement(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	// Bank-transfer style methods report pending first; the session must
	// survive until the settlement webhook arrives.
	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{OrderRef: orderRef, Verdict: service.VerdictPending}, nil).
		Once()

	err := fx.service.HandlePaymentNotification(ctx, orderRef)
	require.NoError(t, err)

	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{OrderRef: orderRef, Verdict: service.VerdictSuccess}, nil).
		Once()
	fx.locator.EXPECT().
		Locate(mock.Anything).
		Return(orb.Point{77.6, 12.9}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(testCartRows(), nil).
		Once()
	fx.orderRepo.EXPECT().
		Append(ctx, "user-1", mock.AnythingOfType("*entity.Order")).
		Return("push-id-1", nil)
	fx.cartRepo.EXPECT().
		Clear(ctx, "user-1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	err = fx.service.HandlePaymentNotification(ctx, orderRef)
	require.NoError(t, err)
}

func TestCheckoutService_HandlePaymentNotification_NoSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.payment.EXPECT().
		ResolveNotification(ctx, "unknown-ref").
		Return(&service.PaymentNotification{OrderRef: "unknown-ref", Verdict: service.VerdictSuccess}, nil)

	err := fx.service.HandlePaymentNotification(ctx, "unknown-ref")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
}

func TestCheckoutService_HandlePaymentNotification_CommitFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	orderRef := beginCheckout(t, fx, "user-1")

	ctx := context.Background()

	fx.payment.EXPECT().
		ResolveNotification(ctx, orderRef).
		Return(&service.PaymentNotification{OrderRef: orderRef, Verdict: service.VerdictSuccess}, nil)
	fx.locator.EXPECT().
		Locate(mock.Anything).
		Return(orb.Point{77.6, 12.9}, nil)
	fx.cartRepo.EXPECT().
		List(ctx, "user-1").
		Return(testCartRows(), nil).
		Once()
	fx.orderRepo.EXPECT().
		Append(ctx, "user-1", mock.AnythingOfType("*entity.Order")).
		Return("", errors.New("tree unavailable"))

	err := fx.service.HandlePaymentNotification(ctx, orderRef)
	assert.ErrorIs(t, err, domainerrors.ErrOrderCommitFailed)
}
