package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when a favorite key does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists the per-user favorite set at
// user/{uid}/addfav/{productID}. Toggle semantics live in the use case;
// the repository only exposes keyed existence, create and delete.
type FavoriteRepository interface {
	// Get reads a favorite snapshot; ErrFavoriteNotFound when absent.
	Get(ctx context.Context, uid, productID string) (*entity.FavoriteItem, error)

	// Set writes the favorite snapshot at the product key.
	Set(ctx context.Context, uid string, item *entity.FavoriteItem) error

	// Remove deletes the favorite key. Removing an absent key is not an error.
	Remove(ctx context.Context, uid, productID string) error

	// List reads the favorite set keyed by product ID.
	List(ctx context.Context, uid string) (map[string]*entity.FavoriteItem, error)
}
