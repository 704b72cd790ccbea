package entity

import "time"

// Order status values. Nothing in this service transitions an order away
// from pending; fulfilment is an out-of-band concern.
const OrderStatusPending = "pending"

// GeoPoint is a latitude/longitude pair as stored in the tree.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Order is an append-only record at user/{uid}/order/{pushID}. Items are
// a snapshot of the cart at commit time, not live-synced to the catalog.
// Immutable after creation except for status.
type Order struct {
	// ID is the push ID assigned by the tree; not stored in the record body.
	ID string `json:"-"`

	Items           []CartItem      `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	PurchaseTime    time.Time       `json:"purchaseTime"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`

	// OrderLocation is the device-derived position at commit time, falling
	// back to the address coordinates when geolocation was unavailable.
	OrderLocation GeoPoint `json:"orderLocation"`
}
