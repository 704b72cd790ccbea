package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
)

type vendorService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	storage     service.StorageService
	logger      *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	storage service.StorageService,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storage:     storage,
		logger:      logger,
	}
}

// CreateProduct appends a product under the vendor's own subtree.
func (srv *vendorService) CreateProduct(ctx context.Context, vendorUID string, input *usecase.ProductInput) (string, error) {
	product := &entity.Product{
		ProductName:        input.ProductName,
		ProductDescription: input.ProductDescription,
		OriginalPrice:      input.OriginalPrice,
		DiscountPrice:      input.DiscountPrice,
		StockQuantity:      input.StockQuantity,
		Nutrients:          input.Nutrients,
		Categories:         input.Categories,
		Dimensions:         input.Dimensions,
		CreatedAt:          time.Now().UTC(),
	}

	productID, err := srv.productRepo.CreateProduct(ctx, vendorUID, product)
	if err != nil {
		return "", errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created",
		slog.String("vendorUID", vendorUID),
		slog.String("productID", productID))

	return productID, nil
}

// UpdateProduct merges only the provided fields plus updatedAt.
func (srv *vendorService) UpdateProduct(ctx context.Context, vendorUID, productID string, input *usecase.ProductUpdateInput) error {
	if _, err := srv.productRepo.GetProduct(ctx, vendorUID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to load product")
	}

	fields := map[string]any{
		"updatedAt": time.Now().UTC(),
	}
	if input.ProductName != nil {
		fields["productName"] = *input.ProductName
	}
	if input.ProductDescription != nil {
		fields["productDescription"] = *input.ProductDescription
	}
	if input.OriginalPrice != nil {
		fields["originalPrice"] = *input.OriginalPrice
	}
	if input.DiscountPrice != nil {
		fields["discountPrice"] = *input.DiscountPrice
	}
	if input.StockQuantity != nil {
		fields["stockQuantity"] = *input.StockQuantity
	}
	if input.Nutrients != nil {
		fields["nutrients"] = *input.Nutrients
	}
	if input.Categories != nil {
		fields["categories"] = *input.Categories
	}
	if input.Dimensions != nil {
		fields["dimensions"] = *input.Dimensions
	}

	if err := srv.productRepo.UpdateProduct(ctx, vendorUID, productID, fields); err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes the product subtree.
func (srv *vendorService) DeleteProduct(ctx context.Context, vendorUID, productID string) error {
	if err := srv.productRepo.DeleteProduct(ctx, vendorUID, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("product deleted",
		slog.String("vendorUID", vendorUID),
		slog.String("productID", productID))

	return nil
}

// ListProducts returns the vendor's products, newest first.
func (srv *vendorService) ListProducts(ctx context.Context, vendorUID string) ([]*usecase.VendorProduct, error) {
	rows, err := srv.productRepo.ListProducts(ctx, vendorUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*usecase.VendorProduct, 0, len(rows))
	for id, product := range rows {
		products = append(products, &usecase.VendorProduct{ProductID: id, Product: product})
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Product.CreatedAt.After(products[j].Product.CreatedAt)
	})

	return products, nil
}

// AddProductPhoto uploads a photo and appends its URL to the product's
// ordered photo list.
func (srv *vendorService) AddProductPhoto(ctx context.Context, vendorUID, productID string, upload *usecase.FileUpload) (string, error) {
	product, err := srv.productRepo.GetProduct(ctx, vendorUID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return "", errors.Wrap(err, "failed to load product")
	}

	url, err := srv.storage.Upload(ctx, service.FolderProductPhotos, upload.Filename, upload.ContentType, upload.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload product photo")
	}

	photos := append(product.ProductPhotoURLs, url)
	fields := map[string]any{
		"productPhotoUrls": photos,
		"updatedAt":        time.Now().UTC(),
	}
	if err := srv.productRepo.UpdateProduct(ctx, vendorUID, productID, fields); err != nil {
		return "", errors.Wrap(err, "failed to attach product photo")
	}

	srv.logger.Info("product photo added",
		slog.String("vendorUID", vendorUID),
		slog.String("productID", productID))

	return url, nil
}

// Orders reads the vendor's product-ID set, then scans every user's order
// list, keeping orders with at least one matching item reduced to the
// matching subset. A full scan with no index; cost grows with total orders.
func (srv *vendorService) Orders(ctx context.Context, vendorUID string) ([]*usecase.VendorOrder, error) {
	products, err := srv.productRepo.ListProducts(ctx, vendorUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor products")
	}

	ownProducts := make(map[string]struct{}, len(products))
	for id := range products {
		ownProducts[id] = struct{}{}
	}

	allOrders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan orders")
	}

	matches := AggregateVendorOrders(ownProducts, allOrders)

	srv.logger.Debug("vendor orders aggregated",
		slog.String("vendorUID", vendorUID),
		slog.Int("matches", len(matches)))

	return matches, nil
}

// AggregateVendorOrders filters every order's items down to the vendor's
// product set, discards orders with no match and sorts the remainder by
// purchase time descending.
func AggregateVendorOrders(ownProducts map[string]struct{}, allOrders map[string][]*entity.Order) []*usecase.VendorOrder {
	matches := make([]*usecase.VendorOrder, 0)
	for uid, orders := range allOrders {
		for _, order := range orders {
			var kept []entity.CartItem
			for _, item := range order.Items {
				if _, ok := ownProducts[item.ProductID]; ok {
					kept = append(kept, item)
				}
			}
			if len(kept) == 0 {
				continue
			}

			matches = append(matches, &usecase.VendorOrder{
				OrderID:      order.ID,
				CustomerUID:  uid,
				Items:        kept,
				Status:       order.Status,
				PurchaseTime: order.PurchaseTime,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].PurchaseTime.After(matches[j].PurchaseTime)
	})

	return matches
}
