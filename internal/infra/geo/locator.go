// Package geo resolves the caller's position and reverse-geocodes
// coordinates through external HTTP services. Both lookups are best
// effort; callers keep their fallback values on any error.
package geo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type httpLocator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocator builds the position lookup client. The per-call deadline is
// the caller's context; the client timeout is only a hard upper bound.
func NewLocator(cfg *config.Config, logger *slog.Logger) (service.Locator, error) {
	if cfg.Geo == nil || cfg.Geo.LocateEndpoint == "" {
		return nil, errors.New("geo locate endpoint is not configured")
	}

	return &httpLocator{
		endpoint: cfg.Geo.LocateEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

type locateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l *httpLocator) Locate(ctx context.Context) (orb.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geolocation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geolocation service returned status: %d", resp.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to decode geolocation response")
	}

	// orb.Point is lng/lat ordered.
	return orb.Point{body.Longitude, body.Latitude}, nil
}
