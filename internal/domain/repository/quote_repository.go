package repository

import (
	"context"
	"time"
)

// QuoteRepository mutates quote notification state.
type QuoteRepository interface {
	// MarkNotified sets the notified flag and timestamp on the quote as a
	// compare-and-swap: it returns false without writing when the flag was
	// already set, so duplicate trigger events dispatch at most once.
	MarkNotified(ctx context.Context, quoteID string, at time.Time) (bool, error)
}
