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

type profileRepository struct {
	db     *db.Client
	logger *slog.Logger
}

// NewProfileRepository persists the per-user profile record.
func NewProfileRepository(client *Client, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{db: client.DB, logger: logger}
}

func (r *profileRepository) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	ref := r.db.NewRef(fmt.Sprintf("user/%s/profile", uid))
	if err := ref.Get(ctx, &profile); err != nil {
		return nil, errors.Wrap(err, "failed to load user profile")
	}
	if profile == nil {
		return nil, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (r *profileRepository) Set(ctx context.Context, uid string, profile *entity.UserProfile) error {
	ref := r.db.NewRef(fmt.Sprintf("user/%s/profile", uid))
	if err := ref.Set(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to save user profile")
	}
	return nil
}
