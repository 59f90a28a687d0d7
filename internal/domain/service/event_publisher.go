package service

import (
	"context"
	"time"
)

// AuditEvent summarizes the outcome of one handled notification event.
// Published after dispatch for downstream analytics and tracing.
type AuditEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Kind       string    `json:"kind"`                 // Event kind, e.g. "new_quote"
	SourceID   string    `json:"source_id"`            // Quote/payment/order/vendor ID
	Recipients int       `json:"recipients"`           // Recipients considered
	Sent       int       `json:"sent"`                 // Successful dispatches
	Failed     int       `json:"failed"`               // Failed dispatches
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing audit events to a
// message queue.
type EventPublisher interface {
	// PublishAuditEvent publishes an event summary for async consumers.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
