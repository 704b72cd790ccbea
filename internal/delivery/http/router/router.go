// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	FavoriteHandler *handler.FavoriteHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AccountHandler  *handler.AccountHandler
	VendorHandler   *handler.VendorHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	favoriteHandler *handler.FavoriteHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	accountHandler  *handler.AccountHandler
	vendorHandler   *handler.VendorHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		favoriteHandler: params.FavoriteHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		accountHandler:  params.AccountHandler,
		vendorHandler:   params.VendorHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/companies/:companyID/products/:productID", r.catalogHandler.GetProduct)
	}

	// Payment gateway callback; the verdict is re-checked against the
	// gateway, so the route itself carries no session.
	e.POST("/payment/notify", r.checkoutHandler.PaymentNotify)

	// Vendor registration is public: the account does not exist yet.
	e.POST("/vendor/register", r.accountHandler.RegisterVendor)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/profile", r.accountHandler.RegisterProfile)
		userGroup.GET("/profile", r.accountHandler.GetProfile)

		userGroup.GET("/cart", r.cartHandler.GetCart)
		userGroup.POST("/cart", r.cartHandler.AddToCart)
		userGroup.PATCH("/cart/:itemID", r.cartHandler.UpdateQuantity)
		userGroup.DELETE("/cart/:itemID", r.cartHandler.RemoveItem)

		userGroup.GET("/favorites", r.favoriteHandler.List)
		userGroup.POST("/favorites/:productID/toggle", r.favoriteHandler.Toggle)

		userGroup.POST("/checkout", r.checkoutHandler.Begin)
		userGroup.POST("/checkout/:orderRef/cancel", r.checkoutHandler.Cancel)

		userGroup.GET("/orders", r.orderHandler.ListOrders)
		userGroup.GET("/orders/:orderRef/qr", r.orderHandler.OrderQR)
	}

	// Vendor routes that require authentication and a company record
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireVendor)
	{
		vendorGroup.GET("/products", r.vendorHandler.ListProducts)
		vendorGroup.POST("/products", r.vendorHandler.CreateProduct)
		vendorGroup.PATCH("/products/:productID", r.vendorHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:productID", r.vendorHandler.DeleteProduct)
		vendorGroup.POST("/products/:productID/photos", r.vendorHandler.AddProductPhoto)
		vendorGroup.GET("/orders", r.vendorHandler.Orders)
	}
}
