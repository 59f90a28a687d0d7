// Package delivery defines the common interface for inbound transports.
package delivery

import "context"

// Delivery is a server that accepts inbound events.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
