package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// OrderUsecase is the customer's own order history.
type OrderUsecase interface {
	// ListOrders returns the user's orders, newest purchase first.
	ListOrders(ctx context.Context, uid string) ([]*entity.Order, error)

	// OrderQR renders a pickup QR code for one of the user's own orders.
	OrderQR(ctx context.Context, uid, orderID string) ([]byte, error)
}
