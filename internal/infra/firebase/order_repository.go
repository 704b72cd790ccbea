package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type orderRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewOrderRepository persists the append-only order list per user.
func NewOrderRepository(client *Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{db: client.DB, logger: logger}
}

func (r *orderRepository) Append(ctx context.Context, uid string, order *entity.Order) (string, error) {
	ref := r.db.NewRef(fmt.Sprintf("user/%s/order", uid))
	newRef, err := ref.Push(ctx, order)
	if err != nil {
		return "", errors.Wrap(err, "failed to push order record")
	}
	return newRef.Key, nil
}

func (r *orderRepository) Get(ctx context.Context, uid, orderID string) (*entity.Order, error) {
	var order *entity.Order
	ref := r.db.NewRef(fmt.Sprintf("user/%s/order/%s", uid, orderID))
	if err := ref.Get(ctx, &order); err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}
	if order == nil {
		return nil, repository.ErrOrderNotFound
	}
	order.ID = orderID
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, uid string) ([]*entity.Order, error) {
	var records map[string]*entity.Order
	ref := r.db.NewRef(fmt.Sprintf("user/%s/order", uid))
	if err := ref.Get(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to load order list")
	}
	return ordersFromRecords(records), nil
}

// userRecord carries just the order branch of a user node; the profile,
// cart and favorite branches are dropped on decode.
type userRecord struct {
	Order map[string]*entity.Order `json:"order"`
}

func (r *orderRepository) ListAll(ctx context.Context) (map[string][]*entity.Order, error) {
	var users map[string]*userRecord
	if err := r.db.NewRef("user").Get(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "failed to scan user order lists")
	}

	all := make(map[string][]*entity.Order, len(users))
	for uid, record := range users {
		if record == nil || len(record.Order) == 0 {
			continue
		}
		all[uid] = ordersFromRecords(record.Order)
	}
	return all, nil
}

// ordersFromRecords populates IDs from the map keys and sorts by push ID
// so the slice order is stable across reads.
func ordersFromRecords(records map[string]*entity.Order) []*entity.Order {
	orders := make([]*entity.Order, 0, len(records))
	for id, order := range records {
		if order == nil {
			continue
		}
		order.ID = id
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}
