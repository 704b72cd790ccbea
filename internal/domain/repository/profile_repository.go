package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrProfileNotFound is returned when user/{uid}/profile does not exist.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository persists the per-user profile at user/{uid}/profile.
type ProfileRepository interface {
	// Get reads the profile; ErrProfileNotFound when absent.
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Set writes the full profile record.
	Set(ctx context.Context, uid string, profile *entity.UserProfile) error
}
