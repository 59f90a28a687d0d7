package repository

import (
	"context"
	"time"
)

// OrderRepository mutates order notification state.
type OrderRepository interface {
	// MarkNotified records that the client was notified about the given
	// status as a compare-and-swap: it returns false without writing when
	// the order's last notified status already equals status. Orders go
	// through many transitions, so the guard is per status, not a one-shot
	// flag like quotes and payments.
	MarkNotified(ctx context.Context, orderID, status string, at time.Time) (bool, error)
}
