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
	"github.com/shopspring/decimal"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// AddToCart snapshots the product into the cart. Requires an existing
// profile; a product already present is rejected rather than merged.
func (srv *cartService) AddToCart(ctx context.Context, uid string, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	if err := srv.requireProfile(ctx, uid); err != nil {
		return nil, err
	}

	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	// Membership is a key-existence check on the product ID.
	_, err := srv.cartRepo.Get(ctx, uid, input.ProductID)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrAlreadyInCart, "product already in cart")
	case !errors.Is(err, repository.ErrCartItemNotFound):
		return nil, errors.Wrap(err, "failed to check cart membership")
	}

	product, err := srv.catalogRepo.GetProduct(ctx, input.CompanyID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	item := &entity.CartItem{
		ProductID:   input.ProductID,
		ProductName: product.ProductName,
		Quantity:    input.Quantity,
		Price:       product.Price(),
		AddedAt:     time.Now().UTC(),
	}

	if err := srv.cartRepo.Create(ctx, uid, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.logger.Info("cart item added",
		slog.String("uid", uid),
		slog.String("productID", input.ProductID),
		slog.Int("quantity", input.Quantity))

	return item, nil
}

// UpdateQuantity overwrites exactly the quantity field for q >= 1.
// Values below 1 are dropped without a write, matching the source.
func (srv *cartService) UpdateQuantity(ctx context.Context, uid, productID string, quantity int) error {
	if quantity < 1 {
		srv.logger.Debug("ignoring quantity update below 1",
			slog.String("uid", uid),
			slog.String("productID", productID),
			slog.Int("quantity", quantity))

		return nil
	}

	if _, err := srv.cartRepo.Get(ctx, uid, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "cart item not found")
		}

		return errors.Wrap(err, "failed to load cart item")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, uid, productID, quantity); err != nil {
		return errors.Wrap(err, "failed to update quantity")
	}

	return nil
}

// RemoveItem deletes the cart row outright.
func (srv *cartService) RemoveItem(ctx context.Context, uid, productID string) error {
	if err := srv.cartRepo.Remove(ctx, uid, productID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	srv.logger.Info("cart item removed",
		slog.String("uid", uid),
		slog.String("productID", productID))

	return nil
}

// GetCart returns the cart rows sorted by addedAt with their subtotal.
func (srv *cartService) GetCart(ctx context.Context, uid string) (*usecase.CartView, error) {
	rows, err := srv.cartRepo.List(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	items := make([]*entity.CartItem, 0, len(rows))
	for _, item := range rows {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return &usecase.CartView{
		Items:    items,
		Subtotal: Subtotal(items),
	}, nil
}

// Subtotal sums price * quantity over the rows with decimal arithmetic.
func Subtotal(items []*entity.CartItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}

	return sum.InexactFloat64()
}

func (srv *cartService) requireProfile(ctx context.Context, uid string) error {
	_, err := srv.profileRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileRequired, "profile required before cart actions")
		}

		return errors.Wrap(err, "failed to load profile")
	}

	return nil
}
