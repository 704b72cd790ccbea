package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type nominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeocoder builds a reverse geocoder against a Nominatim-style endpoint.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.Geo == nil || cfg.Geo.GeocodeEndpoint == "" {
		return nil, errors.New("geo geocode endpoint is not configured")
	}

	return &nominatimGeocoder{
		baseURL: cfg.Geo.GeocodeEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road     string `json:"road"`
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, point orb.Point) (*service.Placemark, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%f", point.Lat()))
	query.Set("lon", fmt.Sprintf("%f", point.Lon()))

	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding service returned status: %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}

	return &service.Placemark{
		Street:      body.Address.Road,
		City:        city,
		State:       body.Address.State,
		Pincode:     body.Address.Postcode,
		FullAddress: body.DisplayName,
	}, nil
}
