package usecase

import (
	"context"
	"io"
	"time"

	"harvest/internal/domain/entity"
)

// VendorUsecase is the vendor dashboard: product CRUD scoped to the
// vendor's own subtree plus the order-aggregation view.
type VendorUsecase interface {
	CreateProduct(ctx context.Context, vendorUID string, input *ProductInput) (string, error)
	UpdateProduct(ctx context.Context, vendorUID, productID string, input *ProductUpdateInput) error
	DeleteProduct(ctx context.Context, vendorUID, productID string) error
	ListProducts(ctx context.Context, vendorUID string) ([]*VendorProduct, error)

	// AddProductPhoto uploads a photo and appends its URL to the product.
	AddProductPhoto(ctx context.Context, vendorUID, productID string, upload *FileUpload) (string, error)

	// Orders scans every user's order list and returns the orders that
	// contain at least one of the vendor's products, reduced to the
	// matching item subset, newest purchase first.
	Orders(ctx context.Context, vendorUID string) ([]*VendorOrder, error)
}

// ProductInput is the parameterized create form (one form serves both the
// fresh-produce and packaged-goods variants of the source).
type ProductInput struct {
	ProductName        string            `json:"product_name" validate:"required"`
	ProductDescription string            `json:"product_description"`
	OriginalPrice      float64           `json:"original_price" validate:"gt=0"`
	DiscountPrice      float64           `json:"discount_price" validate:"gte=0"`
	StockQuantity      int               `json:"stock_quantity" validate:"gte=0"`
	Nutrients          []entity.Nutrient `json:"nutrients"`
	Categories         []entity.Category `json:"categories"`
	Dimensions         string            `json:"dimensions"`
}

// ProductUpdateInput is a partial-field update; nil fields are untouched.
type ProductUpdateInput struct {
	ProductName        *string            `json:"product_name,omitempty"`
	ProductDescription *string            `json:"product_description,omitempty"`
	OriginalPrice      *float64           `json:"original_price,omitempty"`
	DiscountPrice      *float64           `json:"discount_price,omitempty"`
	StockQuantity      *int               `json:"stock_quantity,omitempty"`
	Nutrients          *[]entity.Nutrient `json:"nutrients,omitempty"`
	Categories         *[]entity.Category `json:"categories,omitempty"`
	Dimensions         *string            `json:"dimensions,omitempty"`
}

// VendorProduct pairs a product with its push ID.
type VendorProduct struct {
	ProductID string          `json:"product_id"`
	Product   *entity.Product `json:"product"`
}

// VendorOrder is one matching order in the aggregation view, reduced to
// the vendor's own items.
type VendorOrder struct {
	OrderID      string            `json:"order_id"`
	CustomerUID  string            `json:"customer_uid"`
	Items        []entity.CartItem `json:"items"`
	Status       string            `json:"status"`
	PurchaseTime time.Time         `json:"purchase_time"`
}

// FileUpload is a streamed multipart upload.
type FileUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
