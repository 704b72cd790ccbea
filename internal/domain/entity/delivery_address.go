package entity

import (
	"regexp"

	"harvest/internal/errors"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// DeliveryAddress is the address form captured at checkout. Lat/Lng are
// the profile-derived coordinates and may be zero if never set.
type DeliveryAddress struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	AltPhone string  `json:"altPhone,omitempty"`
	Street   string  `json:"street"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Pincode  string  `json:"pincode"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Validate checks the form with no I/O. The first failing rule is the
// returned error; all rules must pass before payment may open.
func (a *DeliveryAddress) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if !phonePattern.MatchString(a.Phone) {
		return errors.New("phone number must be exactly 10 digits")
	}
	if a.AltPhone != "" && !phonePattern.MatchString(a.AltPhone) {
		return errors.New("alternate phone number must be exactly 10 digits")
	}
	if a.Street == "" {
		return errors.New("street is required")
	}
	if a.City == "" {
		return errors.New("city is required")
	}
	if a.State == "" {
		return errors.New("state is required")
	}
	if !pincodePattern.MatchString(a.Pincode) {
		return errors.New("pincode must be exactly 6 digits")
	}

	return nil
}
