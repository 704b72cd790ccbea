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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the per-user favorite endpoints.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ToggleRequest represents the request body for a favorite toggle
type ToggleRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
}

// Toggle handles flipping favorite membership for a product
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID := c.Param("productID")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorited, err := h.favoriteUC.Toggle(c.Request().Context(), uid, &usecase.ToggleFavoriteInput{
		CompanyID: req.CompanyID,
		ProductID: productID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "Favorite toggled")
}

// List handles reading the favorite set
func (h *FavoriteHandler) List(c echo.Context) error {
	uid, ok := middleware.GetUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.List(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}
