package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type cartRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewCartRepository persists cart rows keyed by product ID under the user.
func NewCartRepository(client *Client, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{db: client.DB, logger: logger}
}

func (r *cartRepository) itemRef(uid, productID string) *db.Ref {
	return r.db.NewRef(fmt.Sprintf("user/%s/addtocart/%s", uid, productID))
}

func (r *cartRepository) Get(ctx context.Context, uid, productID string) (*entity.CartItem, error) {
	var item *entity.CartItem
	if err := r.itemRef(uid, productID).Get(ctx, &item); err != nil {
		return nil, errors.Wrap(err, "failed to load cart item")
	}
	if item == nil {
		return nil, repository.ErrCartItemNotFound
	}
	return item, nil
}

func (r *cartRepository) Create(ctx context.Context, uid string, item *entity.CartItem) error {
	if err := r.itemRef(uid, item.ProductID).Set(ctx, item); err != nil {
		return errors.Wrap(err, "failed to create cart item")
	}
	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, uid, productID string, quantity int) error {
	err := r.itemRef(uid, productID).Update(ctx, map[string]any{"quantity": quantity})
	if err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, uid, productID string) error {
	if err := r.itemRef(uid, productID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}
	return nil
}

func (r *cartRepository) List(ctx context.Context, uid string) (map[string]*entity.CartItem, error) {
	var items map[string]*entity.CartItem
	ref := r.db.NewRef(fmt.Sprintf("user/%s/addtocart", uid))
	if err := ref.Get(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	return items, nil
}

func (r *cartRepository) Clear(ctx context.Context, uid string) error {
	ref := r.db.NewRef(fmt.Sprintf("user/%s/addtocart", uid))
	if err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	return nil
}
