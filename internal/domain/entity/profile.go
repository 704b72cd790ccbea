package entity

// UserProfile lives at user/{uid}/profile. It is created at the first
// post-auth registration step and must exist before cart and checkout
// actions proceed.
type UserProfile struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Pincode string  `json:"pincode,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
