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

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the checkout pipeline endpoints.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// PaymentNotifyRequest is the gateway webhook body. Only the order
// reference is read; the verdict is re-checked against the gateway.
type PaymentNotifyRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// Begin handles opening a checkout session against the current cart
func (h *CheckoutHandler) Begin(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.BeginCheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	out, err := h.checkoutUC.Begin(c.Request().Context(), uid, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "Checkout session created")
}

// Cancel handles dropping a pending checkout session
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderRef := c.Param("orderRef")
	if orderRef == "" {
		return response.BadRequest(c, "INVALID_ID", "Order reference is required")
	}

	if err := h.checkoutUC.Cancel(c.Request().Context(), uid, orderRef); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout cancelled")
}

// PaymentNotify handles the gateway webhook. It is unauthenticated; the
// order reference is resolved against the gateway before anything commits.
func (h *CheckoutHandler) PaymentNotify(c echo.Context) error {
	var req PaymentNotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.checkoutUC.HandlePaymentNotification(c.Request().Context(), req.OrderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification processed")
}
