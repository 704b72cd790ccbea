package firebase

import (
	"context"
	"log/slog"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type identityService struct {
	auth   *auth.Client
	logger *slog.Logger
}

// NewIdentityService verifies session tokens and creates vendor accounts
// against the auth provider.
func NewIdentityService(client *Client, logger *slog.Logger) service.IdentityService {
	return &identityService{auth: client.Auth, logger: logger}
}

func (s *identityService) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := s.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Debug("token verification rejected", slog.Any("error", err))
		return nil, errors.Wrap(domainerrors.ErrAuthRequired, err.Error())
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}

func (s *identityService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	user, err := s.auth.CreateUser(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create auth account")
	}
	return user.UID, nil
}
