// Package usecase defines the application use case interfaces and the
// event payloads they consume.
package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// QuoteData is the quote snapshot carried by a new-quote event.
type QuoteData struct {
	VendorID    string  `json:"vendorId" validate:"required"`
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	TotalAmount float64 `json:"totalAmount"`
}

// QuoteEvent is the inbound payload for a quote created by a client.
type QuoteEvent struct {
	QuoteID   string    `json:"quoteId" validate:"required"`
	QuoteData QuoteData `json:"quoteData" validate:"required"`
}

// PaymentData is the payment snapshot carried by a payment-received event.
type PaymentData struct {
	VendorID string  `json:"vendorId" validate:"required"`
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
}

// PaymentEvent is the inbound payload for a recorded payment.
type PaymentEvent struct {
	PaymentID   string      `json:"paymentId" validate:"required"`
	PaymentData PaymentData `json:"paymentData" validate:"required"`
}

// OrderSnapshot is one side of an order-update event.
type OrderSnapshot struct {
	ClientID string `json:"clientId"`
	Status   string `json:"status"`
}

// OrderEvent carries the old and new order snapshots; only status
// transitions dispatch a notification.
type OrderEvent struct {
	OrderID      string        `json:"orderId" validate:"required"`
	NewData      OrderSnapshot `json:"newData" validate:"required"`
	PreviousData OrderSnapshot `json:"previousData"`
}

// LocationSnapshot is one side of a vendor-location event.
type LocationSnapshot struct {
	Location entity.Location `json:"location"`
}

// VendorLocationEvent carries a vendor's previous and new position.
type VendorLocationEvent struct {
	VendorID     string           `json:"vendorId" validate:"required"`
	NewData      LocationSnapshot `json:"newData" validate:"required"`
	PreviousData LocationSnapshot `json:"previousData"`
}

// Result is the outcome of one handled event. Sent and Failed only carry
// meaning for the fan-out handler; the single-recipient handlers report
// at most one dispatch.
type Result struct {
	Message string `json:"message,omitempty"`
	Sent    int    `json:"-"`
	Failed  int    `json:"-"`
}

// EventUsecase handles the four notification-triggering events of the
// sales platform. Every operation is a pure request/response function over
// its event plus the external store; failed preconditions surface as
// domain AppErrors.
type EventUsecase interface {
	// HandleNewQuote notifies the vendor about a quote requested by a client.
	HandleNewQuote(ctx context.Context, event *QuoteEvent) (*Result, error)

	// HandlePaymentReceived notifies the vendor about a recorded payment.
	HandlePaymentReceived(ctx context.Context, event *PaymentEvent) (*Result, error)

	// HandleOrderUpdate notifies the client when the order status changed.
	HandleOrderUpdate(ctx context.Context, event *OrderEvent) (*Result, error)

	// HandleVendorNearby notifies every client within the proximity radius
	// of the vendor's new position, when the vendor moved far enough.
	HandleVendorNearby(ctx context.Context, event *VendorLocationEvent) (*Result, error)
}
