// Package service defines interfaces for external collaborators: the auth
// provider, object storage, the payment gateway, geo lookups and eventing.
package service

import "context"

// Identity is the session identity issued by the auth provider.
type Identity struct {
	UID   string
	Email string
}

// IdentityService verifies session tokens and creates vendor accounts
// against the federated auth provider.
type IdentityService interface {
	// VerifyIDToken validates a bearer ID token and returns the stable
	// user ID and email it carries.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)

	// CreateAccount creates an email/password account for vendor
	// registration and returns the new user ID.
	CreateAccount(ctx context.Context, email, password string) (string, error)
}
