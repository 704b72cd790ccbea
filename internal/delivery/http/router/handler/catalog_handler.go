// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public browse endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles the flattened, filtered product listing
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := &usecase.CatalogFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles the single-product detail view
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	companyID := c.Param("companyID")
	productID := c.Param("productID")
	if companyID == "" || productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Company and product IDs are required")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), companyID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}
