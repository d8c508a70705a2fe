package config

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// InitFirebase returns an FCM client, or nil when no credentials are configured.
func InitFirebase(ctx context.Context, cfg *Config) (*messaging.Client, error) {
	if cfg.FirebaseCredentialsPath == "" {
		slog.Info("FIREBASE_CREDENTIALS_PATH not set, push notifications disabled")
		return nil, nil
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing FCM client: %w", err)
	}
	return client, nil
}
