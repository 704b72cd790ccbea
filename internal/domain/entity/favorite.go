package entity

import "time"

// FavoriteItem is pure set membership with a metadata snapshot at
// user/{uid}/addfav/{productID}. The snapshot is not live-updated if the
// product price changes later.
type FavoriteItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	AddedAt     time.Time `json:"addedAt"`
}
