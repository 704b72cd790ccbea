package repository

import (
	"context"

	"harvest/internal/domain/entity"
)

// RegistrationRepository persists pending vendor applications at
// registrations/{uid}. Status stays "pending" here; approval is an
// out-of-band admin process.
type RegistrationRepository interface {
	// Create writes the registration record.
	Create(ctx context.Context, registration *entity.VendorRegistration) error
}
