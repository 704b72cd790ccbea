package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves the vendor dashboard endpoints. All routes are
// gated by the vendor middleware; the UID doubles as the company ID.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// CreateProduct handles adding a product to the vendor's subtree
func (h *VendorHandler) CreateProduct(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := h.vendorUC.CreateProduct(c.Request().Context(), uid, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"product_id": productID}, "Product created successfully")
}

// ListProducts handles the vendor's own product listing
func (h *VendorHandler) ListProducts(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.vendorUC.ListProducts(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// UpdateProduct handles a partial-field product update
func (h *VendorHandler) UpdateProduct(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("productID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	var req usecase.ProductUpdateInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.vendorUC.UpdateProduct(c.Request().Context(), uid, productID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct handles removing a product from the vendor's subtree
func (h *VendorHandler) DeleteProduct(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("productID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	if err := h.vendorUC.DeleteProduct(c.Request().Context(), uid, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// AddProductPhoto handles a multipart photo upload for one product
func (h *VendorHandler) AddProductPhoto(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("productID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return response.BadRequest(c, "MISSING_FILE", "Photo file is required")
		}

		return response.BadRequest(c, "INVALID_FILE", "Failed to read photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Failed to open photo file")
	}
	defer file.Close()

	url, err := h.vendorUC.AddProductPhoto(c.Request().Context(), uid, productID, &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"photo_url": url}, "Photo uploaded successfully")
}

// Orders handles the vendor's order aggregation view
func (h *VendorHandler) Orders(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.vendorUC.Orders(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
