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

type favoriteRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewFavoriteRepository persists the favorite set keyed by product ID.
func NewFavoriteRepository(client *Client, logger *slog.Logger) repository.FavoriteRepository {
	return &favoriteRepository{db: client.DB, logger: logger}
}

func (r *favoriteRepository) itemRef(uid, productID string) *db.Ref {
	return r.db.NewRef(fmt.Sprintf("user/%s/addfav/%s", uid, productID))
}

func (r *favoriteRepository) Get(ctx context.Context, uid, productID string) (*entity.FavoriteItem, error) {
	var item *entity.FavoriteItem
	if err := r.itemRef(uid, productID).Get(ctx, &item); err != nil {
		return nil, errors.Wrap(err, "failed to load favorite")
	}
	if item == nil {
		return nil, repository.ErrFavoriteNotFound
	}
	return item, nil
}

func (r *favoriteRepository) Set(ctx context.Context, uid string, item *entity.FavoriteItem) error {
	if err := r.itemRef(uid, item.ProductID).Set(ctx, item); err != nil {
		return errors.Wrap(err, "failed to set favorite")
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, uid, productID string) error {
	if err := r.itemRef(uid, productID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}
	return nil
}

func (r *favoriteRepository) List(ctx context.Context, uid string) (map[string]*entity.FavoriteItem, error) {
	var items map[string]*entity.FavoriteItem
	ref := r.db.NewRef(fmt.Sprintf("user/%s/addfav", uid))
	if err := ref.Get(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}
	return items, nil
}
