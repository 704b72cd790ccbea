package middleware

import (
	"net/http"
	"strings"

	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	contextKeyUID   = "uid"
	contextKeyEmail = "email"
)

// AuthMiddleware verifies the Firebase ID token carried as a bearer token
// and gates vendor routes on company ownership.
type AuthMiddleware struct {
	identity    service.IdentityService
	productRepo repository.ProductRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityService, productRepo repository.ProductRepository) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, productRepo: productRepo}
}

// Authenticate validates the bearer ID token against the auth provider.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		identity, err := m.identity.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyUID, identity.UID)
		c.Set(contextKeyEmail, identity.Email)

		return next(c)
	}
}

// RequireVendor gates vendor routes: the caller's UID must own a company
// record. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireVendor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := GetUID(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
		}

		exists, err := m.productRepo.CompanyExists(c.Request().Context(), uid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check vendor status"})
		}
		if !exists {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: vendor account required"})
		}

		return next(c)
	}
}

// GetUID extracts the authenticated user ID from the context.
func GetUID(c echo.Context) (string, bool) {
	uid, ok := c.Get(contextKeyUID).(string)
	if !ok || uid == "" {
		return "", false
	}

	return uid, true
}

// GetEmail extracts the authenticated email from the context.
func GetEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(contextKeyEmail).(string)

	return email, ok && email != ""
}
