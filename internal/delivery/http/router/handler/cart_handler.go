package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the per-user cart endpoints.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateQuantityRequest represents the request body for a quantity change
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddToCart handles snapshotting a product into the cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.AddToCartInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddToCart(c.Request().Context(), uid, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Product added to cart")
}

// GetCart handles the cart read model
func (h *CartHandler) GetCart(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// UpdateQuantity handles a quantity overwrite for one cart row
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("itemID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Cart item ID is required")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), uid, productID, req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart quantity updated")
}

// RemoveItem handles deleting one cart row
func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("itemID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Cart item ID is required")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), uid, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}
