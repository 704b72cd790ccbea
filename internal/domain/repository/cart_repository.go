package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrCartItemNotFound is returned when a cart key does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists per-user cart rows at user/{uid}/addtocart/{productID}.
type CartRepository interface {
	// Get reads a single cart row; ErrCartItemNotFound when absent.
	Get(ctx context.Context, uid, productID string) (*entity.CartItem, error)

	// Create writes a new cart row at the product key.
	Create(ctx context.Context, uid string, item *entity.CartItem) error

	// UpdateQuantity merges exactly the quantity field, leaving every
	// other field of the row untouched.
	UpdateQuantity(ctx context.Context, uid, productID string, quantity int) error

	// Remove deletes the cart row outright.
	Remove(ctx context.Context, uid, productID string) error

	// List reads the whole cart keyed by product ID.
	List(ctx context.Context, uid string) (map[string]*entity.CartItem, error)

	// Clear deletes the entire addtocart subtree for the user.
	Clear(ctx context.Context, uid string) error
}
