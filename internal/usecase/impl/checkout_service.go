package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type checkoutService struct {
	cartRepo    repository.CartRepository
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	payment     service.PaymentService
	locator     service.Locator
	publisher   service.EventPublisher
	sessions    *sessionStore
	cfg         *config.Config
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	profileRepo repository.ProfileRepository,
	orderRepo repository.OrderRepository,
	payment service.PaymentService,
	locator service.Locator,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:    cartRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		payment:     payment,
		locator:     locator,
		publisher:   publisher,
		sessions:    newSessionStore(cfg.Checkout.SessionTTL),
		cfg:         cfg,
		logger:      logger,
	}
}

// Begin validates the pipeline entry conditions and opens the hosted
// payment flow. No order is written until the gateway reports success.
func (srv *checkoutService) Begin(ctx context.Context, uid string, input *usecase.BeginCheckoutInput) (*usecase.BeginCheckoutOutput, error) {
	profile, err := srv.profileRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "profile required before checkout")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	rows, err := srv.cartRepo.List(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "cannot check out an empty cart")
	}

	address := input.Address
	if err := address.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if address.Lat == 0 && address.Lng == 0 {
		// Profile coordinates are the address-derived fallback; they may
		// themselves still be {0,0} if never set.
		address.Lat = profile.Lat
		address.Lng = profile.Lng
	}

	items := sortedCartItems(rows)
	subtotal := decimal.NewFromFloat(Subtotal(items))
	shipping := decimal.NewFromFloat(srv.cfg.Checkout.ShippingFee)
	total := subtotal.Add(shipping)

	orderRef := uuid.New().String()
	session, err := srv.payment.CreateTransaction(ctx, orderRef, total.InexactFloat64(), service.CustomerDetails{
		Name:  address.Name,
		Phone: address.Phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment transaction")
	}

	srv.sessions.put(orderRef, &checkoutSession{
		uid:       uid,
		address:   address,
		createdAt: time.Now(),
	})

	srv.logger.Info("checkout started",
		slog.String("uid", uid),
		slog.String("orderRef", orderRef),
		slog.Float64("total", total.InexactFloat64()))

	return &usecase.BeginCheckoutOutput{
		OrderRef:    orderRef,
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
		Subtotal:    subtotal.InexactFloat64(),
		Shipping:    shipping.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}, nil
}

// Cancel drops a pending session; the cart is untouched.
func (srv *checkoutService) Cancel(ctx context.Context, uid, orderRef string) error {
	if _, ok := srv.sessions.takeOwned(orderRef, uid); !ok {
		return errors.Wrap(domainerrors.ErrCheckoutNotFound, "no pending checkout")
	}

	srv.logger.Info("checkout cancelled",
		slog.String("uid", uid),
		slog.String("orderRef", orderRef))

	return nil
}

// HandlePaymentNotification resolves the gateway verdict for a webhook
// and either commits the order or drops the session.
func (srv *checkoutService) HandlePaymentNotification(ctx context.Context, orderRef string) error {
	notification, err := srv.payment.ResolveNotification(ctx, orderRef)
	if err != nil {
		return errors.Wrap(err, "failed to resolve payment notification")
	}

	// Async payment methods report pending before settlement. The session
	// stays put until a final verdict arrives.
	if notification.Verdict == service.VerdictPending {
		srv.logger.Info("payment pending",
			slog.String("orderRef", orderRef),
			slog.String("description", notification.Description))

		return nil
	}

	session, ok := srv.sessions.take(orderRef)
	if !ok {
		return errors.Wrap(domainerrors.ErrCheckoutNotFound, "no pending checkout for notification")
	}

	if notification.Verdict != service.VerdictSuccess {
		srv.logger.Info("payment failed",
			slog.String("orderRef", orderRef),
			slog.String("description", notification.Description))

		// The gateway's description is surfaced verbatim; no automatic retry.
		return domainerrors.ErrPaymentFailed.WithDetails(notification.Description)
	}

	return srv.commitOrder(ctx, orderRef, session)
}

// commitOrder runs only after the payment was captured. A failure past
// this point is surfaced as a generic retry prompt while the money stays
// captured; the order-placed event stream is the seam for a reconciler.
func (srv *checkoutService) commitOrder(ctx context.Context, orderRef string, session *checkoutSession) error {
	location := srv.locateWithFallback(ctx, session.address)

	rows, err := srv.cartRepo.List(ctx, session.uid)
	if err != nil {
		srv.logger.Error("order commit failed after payment capture",
			slog.String("orderRef", orderRef),
			slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrOrderCommitFailed, "failed to snapshot cart")
	}

	items := sortedCartItems(rows)
	subtotal := decimal.NewFromFloat(Subtotal(items))
	shipping := decimal.NewFromFloat(srv.cfg.Checkout.ShippingFee)
	total := subtotal.Add(shipping)

	order := &entity.Order{
		Items:           dereferenceItems(items),
		Subtotal:        subtotal.InexactFloat64(),
		Shipping:        shipping.InexactFloat64(),
		Total:           total.InexactFloat64(),
		Status:          entity.OrderStatusPending,
		PurchaseTime:    time.Now().UTC(),
		DeliveryAddress: session.address,
		OrderLocation:   location,
	}

	orderID, err := srv.orderRepo.Append(ctx, session.uid, order)
	if err != nil {
		srv.logger.Error("order commit failed after payment capture",
			slog.String("orderRef", orderRef),
			slog.String("uid", session.uid),
			slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrOrderCommitFailed, "failed to write order")
	}

	if err := srv.cartRepo.Clear(ctx, session.uid); err != nil {
		// The order is already recorded; an uncleared cart is recoverable
		// by the user, so log rather than fail the commit.
		srv.logger.Warn("failed to clear cart after order commit",
			slog.String("uid", session.uid),
			slog.Any("error", err))
	}

	srv.publishOrderPlaced(ctx, orderID, session.uid, order)

	srv.logger.Info("order placed",
		slog.String("uid", session.uid),
		slog.String("orderID", orderID),
		slog.Float64("total", order.Total))

	return nil
}

// locateWithFallback attempts device geolocation within the configured
// timeout and silently falls back to the address coordinates.
func (srv *checkoutService) locateWithFallback(ctx context.Context, address entity.DeliveryAddress) entity.GeoPoint {
	fallback := entity.GeoPoint{Lat: address.Lat, Lng: address.Lng}
	if srv.locator == nil {
		return fallback
	}

	timeout := 5 * time.Second
	if srv.cfg.Geo != nil && srv.cfg.Geo.LocateTimeout > 0 {
		timeout = srv.cfg.Geo.LocateTimeout
	}

	locateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	point, err := srv.locator.Locate(locateCtx)
	if err != nil {
		srv.logger.Debug("geolocation unavailable, using address coordinates",
			slog.Any("error", err))

		return fallback
	}

	return entity.GeoPoint{Lat: point.Lat(), Lng: point.Lon()}
}

func (srv *checkoutService) publishOrderPlaced(ctx context.Context, orderID, uid string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	productIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	event := &service.OrderPlacedEvent{
		OrderID:      orderID,
		UID:          uid,
		Total:        order.Total,
		PurchaseTime: order.PurchaseTime,
		ProductIDs:   productIDs,
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.logger.Warn("failed to publish order event",
			slog.String("orderID", orderID),
			slog.Any("error", err))
	}
}

func sortedCartItems(rows map[string]*entity.CartItem) []*entity.CartItem {
	items := make([]*entity.CartItem, 0, len(rows))
	for _, item := range rows {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items
}

func dereferenceItems(items []*entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}

	return out
}
