package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// CheckoutUsecase drives the cart-to-order pipeline:
// Idle -> address validated -> payment pending -> order placed, with
// cancellation dropping the pending session back to Idle.
type CheckoutUsecase interface {
	// Begin validates the address against a non-empty cart and opens a
	// hosted payment session. No order is written yet.
	Begin(ctx context.Context, uid string, input *BeginCheckoutInput) (*BeginCheckoutOutput, error)

	// Cancel drops a pending checkout session. The cart is untouched.
	Cancel(ctx context.Context, uid, orderRef string) error

	// HandlePaymentNotification resolves a gateway webhook for the order
	// reference. Final verdicts commit the order or drop the session,
	// surfacing the gateway's description verbatim; pending verdicts
	// leave the session in place for a later settlement webhook.
	HandlePaymentNotification(ctx context.Context, orderRef string) error
}

// BeginCheckoutInput carries the delivery-address form.
type BeginCheckoutInput struct {
	Address entity.DeliveryAddress `json:"address"`
}

// BeginCheckoutOutput hands the hosted payment session to the client.
type BeginCheckoutOutput struct {
	OrderRef    string  `json:"order_ref"`
	Token       string  `json:"token"`
	RedirectURL string  `json:"redirect_url"`
	Subtotal    float64 `json:"subtotal"`
	Shipping    float64 `json:"shipping"`
	Total       float64 `json:"total"`
}
