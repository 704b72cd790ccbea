package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published after an order commit. It is the seam
// where an outbox or reconciliation consumer would attach: the payment is
// captured before the commit, so a consumer can replay a failed commit
// against the captured payment.
type OrderPlacedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string    `json:"order_id"`
	UID          string    `json:"uid"`
	Total        float64   `json:"total"`
	PurchaseTime time.Time `json:"purchase_time"`

	// ProductIDs of the order items, for per-vendor consumers.
	ProductIDs []string `json:"product_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
