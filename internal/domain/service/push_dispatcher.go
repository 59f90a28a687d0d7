// Package service defines interfaces for external collaborators of the
// notification handlers.
package service

import (
	"context"
)

// PushDispatcher sends one push message to a single device token.
// There is no retry: a failed attempt propagates to the owning handler.
type PushDispatcher interface {
	// Send delivers a message and returns the provider's delivery ID.
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}
