// Package firebase wires the managed backend: the Realtime Database
// document tree and the auth provider. The handle is constructed once at
// process start and passed down; nothing here is a package-level singleton.
package firebase

import (
	"context"

	"harvest/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Client bundles the database and auth handles of one Firebase app.
type Client struct {
	DB   *db.Client
	Auth *auth.Client
}

// New initializes the Firebase app from config.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &Client{DB: dbClient, Auth: authClient}, nil
}
