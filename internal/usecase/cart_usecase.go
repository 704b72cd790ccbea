package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// CartUsecase owns the per-user cart rows. All mutations require an
// existing user profile.
type CartUsecase interface {
	// AddToCart snapshots the product into the cart. A product already in
	// the cart is rejected, not merged.
	AddToCart(ctx context.Context, uid string, input *AddToCartInput) (*entity.CartItem, error)

	// UpdateQuantity overwrites exactly the quantity field for values >= 1;
	// values < 1 are dropped without any write.
	UpdateQuantity(ctx context.Context, uid, productID string, quantity int) error

	// RemoveItem deletes the cart row.
	RemoveItem(ctx context.Context, uid, productID string) error

	// GetCart returns the cart rows and their subtotal.
	GetCart(ctx context.Context, uid string) (*CartView, error)
}

// AddToCartInput identifies the product to snapshot into the cart.
type AddToCartInput struct {
	CompanyID string `json:"company_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CartView is the cart read model.
type CartView struct {
	Items    []*entity.CartItem `json:"items"`
	Subtotal float64            `json:"subtotal"`
}
