package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order path does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the append-only order list at
// user/{uid}/order/{pushID}.
type OrderRepository interface {
	// Append pushes a new order under the user and returns the push ID.
	Append(ctx context.Context, uid string, order *entity.Order) (string, error)

	// Get reads one order; ErrOrderNotFound when absent.
	Get(ctx context.Context, uid, orderID string) (*entity.Order, error)

	// ListByUser reads all orders of one user, IDs populated.
	ListByUser(ctx context.Context, uid string) ([]*entity.Order, error)

	// ListAll reads every user's order list keyed by uid. This is a full
	// scan of the user tree with no index; cost grows with total orders.
	ListAll(ctx context.Context) (map[string][]*entity.Order, error)
}
