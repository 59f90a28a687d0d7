package repository

import (
	"context"
	"time"
)

// PaymentRepository mutates payment notification state.
type PaymentRepository interface {
	// MarkNotified behaves like QuoteRepository.MarkNotified for payments.
	MarkNotified(ctx context.Context, paymentID string, at time.Time) (bool, error)
}
