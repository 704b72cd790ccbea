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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the customer's order history endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles the order history view, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// OrderQR handles rendering a pickup QR code for one order
func (h *OrderHandler) OrderQR(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID := c.Param("orderRef")
	if orderID == "" {
		return response.BadRequest(c, "INVALID_ID", "Order ID is required")
	}

	qrCode, err := h.orderUC.OrderQR(c.Request().Context(), uid, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=order-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
