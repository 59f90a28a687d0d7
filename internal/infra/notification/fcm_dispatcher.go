// Package notification implements the push dispatcher on Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"fmt"

	"notifier/config"
	"notifier/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmDispatcher struct {
	client *messaging.Client
}

// NewFCMDispatcher creates a push dispatcher backed by Firebase Cloud
// Messaging.
func NewFCMDispatcher(ctx context.Context, cfg *config.Config) (service.PushDispatcher, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmDispatcher{
		client: client,
	}, nil
}

// Send delivers one message to a single device token and returns the FCM
// message ID. A single failed attempt propagates to the caller; there is
// no retry here.
func (d *fcmDispatcher) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	deliveryID, err := d.client.Send(ctx, message)
	if err != nil {
		if IsUnregisteredToken(err) {
			return "", fmt.Errorf("unregistered device token: %w", err)
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return deliveryID, nil
}

// IsUnregisteredToken reports whether the delivery error means the device
// token is no longer valid.
func IsUnregisteredToken(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}
