package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Placemark is a best-effort reverse-geocoding result; any field may be
// empty and callers must keep prior values on a miss.
type Placemark struct {
	Street      string
	City        string
	State       string
	Pincode     string
	FullAddress string
}

// Locator acquires the device position. The caller bounds the attempt via
// the context; on error the checkout pipeline falls back to the
// address-derived coordinates.
type Locator interface {
	Locate(ctx context.Context) (orb.Point, error)
}

// Geocoder resolves coordinates to an address, best effort.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point orb.Point) (*Placemark, error)
}
