package impl

import (
	"context"
	"log/slog"
	"sort"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
)

type orderService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		qrService: qrService,
		logger:    logger,
	}
}

// ListOrders returns the user's orders, newest purchase first.
func (srv *orderService) ListOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].PurchaseTime.After(orders[j].PurchaseTime)
	})

	return orders, nil
}

// OrderQR renders a pickup QR code for one of the user's own orders.
func (srv *orderService) OrderQR(ctx context.Context, uid, orderID string) ([]byte, error) {
	if _, err := srv.orderRepo.Get(ctx, uid, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	png, err := srv.qrService.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return png, nil
}
