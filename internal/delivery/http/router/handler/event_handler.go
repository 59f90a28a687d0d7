// Package handler contains the HTTP handlers for platform event ingestion.
package handler

import (
	"log/slog"

	"notifier/internal/delivery/http/response"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event ingestion handlers
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// NewQuote handles a quote creation event and notifies the quoted vendor.
func (h *EventHandler) NewQuote(c echo.Context) error {
	var req usecase.QuoteEvent
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote event payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.HandleNewQuote(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Message)
}

// PaymentReceived handles a payment registration event and notifies the
// paid vendor.
func (h *EventHandler) PaymentReceived(c echo.Context) error {
	var req usecase.PaymentEvent
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment event payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.HandlePaymentReceived(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Message)
}

// OrderUpdate handles an order status transition event and notifies the
// ordering client.
func (h *EventHandler) OrderUpdate(c echo.Context) error {
	var req usecase.OrderEvent
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order event payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.HandleOrderUpdate(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Message)
}

// VendorNearby handles a vendor location update event and fans out proximity
// notifications to nearby clients.
func (h *EventHandler) VendorNearby(c echo.Context) error {
	var req usecase.VendorLocationEvent
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor location payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.HandleVendorNearby(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Message)
}
