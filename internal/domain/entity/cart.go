package entity

import "time"

// CartItem is one row per product per user at user/{uid}/addtocart/{productID}.
// Membership is checked by key existence, so a duplicate add is rejected
// rather than merged.
type CartItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	AddedAt     time.Time `json:"addedAt"`
}

// LineTotal returns price * quantity for this row.
func (i *CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
