package impl

import (
	"io"
	"log/slog"
	"time"

	"harvest/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(shippingFee float64) *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			ShippingFee: shippingFee,
			SessionTTL:  time.Minute,
		},
	}
}
