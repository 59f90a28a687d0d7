// Package firestore implements the record-store repositories on top of
// Cloud Firestore, the platform's document store.
package firestore

import (
	"context"

	"notifier/config"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names used by the notification handlers.
const (
	collectionUsers           = "users"
	collectionQuotes          = "quotes"
	collectionPayments        = "payments"
	collectionOrders          = "orders"
	collectionClientLocations = "client_locations"
)

// Params holds dependencies for the Firestore client
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// New creates the process-scoped Firestore client. The handle lives for
// the whole process and is closed on shutdown; it is always passed as an
// explicit dependency, never held as ambient state.
func New(params Params) (*cloudfs.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase configuration with projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := cloudfs.NewClient(params.Ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
