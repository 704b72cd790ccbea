package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// FavoriteUsecase owns the per-user favorite set.
type FavoriteUsecase interface {
	// Toggle flips membership for the product: present deletes, absent
	// creates a snapshot. Returns the final membership state.
	Toggle(ctx context.Context, uid string, input *ToggleFavoriteInput) (bool, error)

	// List returns the favorite snapshots.
	List(ctx context.Context, uid string) ([]*entity.FavoriteItem, error)
}

// ToggleFavoriteInput identifies the product to toggle.
type ToggleFavoriteInput struct {
	CompanyID string `json:"company_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
}
