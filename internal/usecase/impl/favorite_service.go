package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	catalogRepo  repository.CatalogRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// Toggle flips favorite membership: delete when present, create a
// snapshot when absent. Concurrent toggles from multiple devices resolve
// last-write-wins at the tree; no transaction is attempted.
func (srv *favoriteService) Toggle(ctx context.Context, uid string, input *usecase.ToggleFavoriteInput) (bool, error) {
	_, err := srv.favoriteRepo.Get(ctx, uid, input.ProductID)
	switch {
	case err == nil:
		if err := srv.favoriteRepo.Remove(ctx, uid, input.ProductID); err != nil {
			return true, errors.Wrap(err, "failed to remove favorite")
		}

		srv.logger.Info("favorite removed",
			slog.String("uid", uid),
			slog.String("productID", input.ProductID))

		return false, nil

	case !errors.Is(err, repository.ErrFavoriteNotFound):
		return false, errors.Wrap(err, "failed to check favorite membership")
	}

	product, err := srv.catalogRepo.GetProduct(ctx, input.CompanyID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return false, errors.Wrap(err, "failed to load product")
	}

	item := &entity.FavoriteItem{
		ProductID:   input.ProductID,
		ProductName: product.ProductName,
		Price:       product.Price(),
		AddedAt:     time.Now().UTC(),
	}

	if err := srv.favoriteRepo.Set(ctx, uid, item); err != nil {
		return false, errors.Wrap(err, "failed to add favorite")
	}

	srv.logger.Info("favorite added",
		slog.String("uid", uid),
		slog.String("productID", input.ProductID))

	return true, nil
}

// List returns the favorite snapshots, newest first.
func (srv *favoriteService) List(ctx context.Context, uid string) ([]*entity.FavoriteItem, error) {
	rows, err := srv.favoriteRepo.List(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	items := make([]*entity.FavoriteItem, 0, len(rows))
	for _, item := range rows {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.After(items[j].AddedAt)
	})

	return items, nil
}
