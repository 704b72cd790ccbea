package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type registrationRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewRegistrationRepository persists pending vendor applications.
func NewRegistrationRepository(client *Client, logger *slog.Logger) repository.RegistrationRepository {
	return &registrationRepository{db: client.DB, logger: logger}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.VendorRegistration) error {
	ref := r.db.NewRef(fmt.Sprintf("registrations/%s", registration.UID))
	if err := ref.Set(ctx, registration); err != nil {
		return errors.Wrap(err, "failed to save vendor registration")
	}
	return nil
}
