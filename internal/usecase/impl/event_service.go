// Package impl implements the notification event use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/payload"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	"notifier/internal/errors"
	"notifier/internal/usecase"
)

const msgAlreadyNotified = "Notificación ya enviada"

type eventService struct {
	logger          *slog.Logger
	users           repository.UserRepository
	quotes          repository.QuoteRepository
	payments        repository.PaymentRepository
	orders          repository.OrderRepository
	clientLocations repository.ClientLocationRepository
	dispatcher      service.PushDispatcher
	publisher       service.EventPublisher

	minDisplacementMeters float64
	proximityRadiusMeters float64
}

// NewEventService creates the event handler service. Thresholds come from
// the notify config section; zero values fall back to platform defaults.
func NewEventService(
	logger *slog.Logger,
	users repository.UserRepository,
	quotes repository.QuoteRepository,
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	clientLocations repository.ClientLocationRepository,
	dispatcher service.PushDispatcher,
	publisher service.EventPublisher,
	cfg *config.Config,
) usecase.EventUsecase {
	notify := cfg.Notify
	if notify == nil {
		notify = &config.NotifyConfig{
			MinDisplacementMeters: 100,
			ProximityRadiusMeters: 5000,
		}
	}

	return &eventService{
		logger:                logger,
		users:                 users,
		quotes:                quotes,
		payments:              payments,
		orders:                orders,
		clientLocations:       clientLocations,
		dispatcher:            dispatcher,
		publisher:             publisher,
		minDisplacementMeters: notify.MinDisplacementMeters,
		proximityRadiusMeters: notify.ProximityRadiusMeters,
	}
}

// HandleNewQuote notifies the vendor that a client requested a quote.
func (s *eventService) HandleNewQuote(ctx context.Context, event *usecase.QuoteEvent) (*usecase.Result, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	vendor, err := s.resolveRecipient(ctx, event.QuoteData.VendorID, domainerrors.ErrVendorNotFound)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// The notified flag is claimed before dispatch so a redelivered trigger
	// notifies the vendor at most once.
	updated, err := s.quotes.MarkNotified(ctx, event.QuoteID, now)
	if err != nil {
		return nil, s.storeError(err)
	}
	if !updated {
		logger.Info("quote already notified, skipping dispatch",
			slog.String("quote_id", event.QuoteID),
		)

		return &usecase.Result{Message: msgAlreadyNotified}, nil
	}

	p := payload.NewQuote(
		event.QuoteID,
		event.QuoteData.ClientID,
		event.QuoteData.ClientName,
		event.QuoteData.TotalAmount,
		now,
	)

	deliveryID, err := s.dispatcher.Send(ctx, vendor.FCMToken, p.Title, p.Body, p.Data)
	if err != nil {
		logger.Error("failed to dispatch new-quote notification",
			slog.String("quote_id", event.QuoteID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDeliveryFailed.WithDetails(err.Error())
	}

	logger.Info("new-quote notification dispatched",
		slog.String("quote_id", event.QuoteID),
		slog.String("vendor_id", vendor.ID),
		slog.String("delivery_id", deliveryID),
	)

	s.publishAudit(ctx, payload.KindNewQuote, event.QuoteID, 1, 1, 0)

	return &usecase.Result{Sent: 1}, nil
}

// HandlePaymentReceived notifies the vendor about a recorded payment.
func (s *eventService) HandlePaymentReceived(ctx context.Context, event *usecase.PaymentEvent) (*usecase.Result, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	vendor, err := s.resolveRecipient(ctx, event.PaymentData.VendorID, domainerrors.ErrVendorNotFound)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	updated, err := s.payments.MarkNotified(ctx, event.PaymentID, now)
	if err != nil {
		return nil, s.storeError(err)
	}
	if !updated {
		logger.Info("payment already notified, skipping dispatch",
			slog.String("payment_id", event.PaymentID),
		)

		return &usecase.Result{Message: msgAlreadyNotified}, nil
	}

	p := payload.PaymentReceived(
		event.PaymentID,
		event.PaymentData.OrderID,
		event.PaymentData.Amount,
		now,
	)

	deliveryID, err := s.dispatcher.Send(ctx, vendor.FCMToken, p.Title, p.Body, p.Data)
	if err != nil {
		logger.Error("failed to dispatch payment notification",
			slog.String("payment_id", event.PaymentID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDeliveryFailed.WithDetails(err.Error())
	}

	logger.Info("payment notification dispatched",
		slog.String("payment_id", event.PaymentID),
		slog.String("vendor_id", vendor.ID),
		slog.String("delivery_id", deliveryID),
	)

	s.publishAudit(ctx, payload.KindPaymentReceived, event.PaymentID, 1, 1, 0)

	return &usecase.Result{Sent: 1}, nil
}

// HandleOrderUpdate notifies the client when the order status changed
// between the previous and new snapshots.
func (s *eventService) HandleOrderUpdate(ctx context.Context, event *usecase.OrderEvent) (*usecase.Result, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	// Only status transitions are notifiable
	if event.NewData.Status == event.PreviousData.Status {
		return &usecase.Result{Message: "No hay cambios en el estado"}, nil
	}

	client, err := s.resolveRecipient(ctx, event.NewData.ClientID, domainerrors.ErrClientNotFound)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	updated, err := s.orders.MarkNotified(ctx, event.OrderID, event.NewData.Status, now)
	if err != nil {
		return nil, s.storeError(err)
	}
	if !updated {
		logger.Info("order status already notified, skipping dispatch",
			slog.String("order_id", event.OrderID),
			slog.String("status", event.NewData.Status),
		)

		return &usecase.Result{Message: msgAlreadyNotified}, nil
	}

	p := payload.OrderUpdate(event.OrderID, event.NewData.Status, now)

	deliveryID, err := s.dispatcher.Send(ctx, client.FCMToken, p.Title, p.Body, p.Data)
	if err != nil {
		logger.Error("failed to dispatch order-update notification",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDeliveryFailed.WithDetails(err.Error())
	}

	logger.Info("order-update notification dispatched",
		slog.String("order_id", event.OrderID),
		slog.String("client_id", client.ID),
		slog.String("status", event.NewData.Status),
		slog.String("delivery_id", deliveryID),
	)

	s.publishAudit(ctx, payload.KindOrderUpdate, event.OrderID, 1, 1, 0)

	return &usecase.Result{Sent: 1}, nil
}

// resolveRecipient loads a recipient and enforces the device-token
// invariant: a recipient without a token is a terminal condition for the
// triggering event.
func (s *eventService) resolveRecipient(ctx context.Context, id string, notFound *domainerrors.BaseError) (*entity.Recipient, error) {
	record, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRecordNotFound) {
			return nil, notFound.WithDetails("users/" + id)
		}

		return nil, domainerrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	if !record.CanReceivePush() {
		return nil, domainerrors.ErrMissingFCMToken.WithDetails("users/" + id)
	}

	return record, nil
}

// storeError normalizes record-store failures for the handler boundary.
func (s *eventService) storeError(err error) error {
	if errors.Is(err, domainerrors.ErrRecordNotFound) {
		return err
	}

	return domainerrors.ErrStoreWriteFailed.WithDetails(err.Error())
}

// publishAudit emits a best-effort audit event; failures are logged and
// never affect the handler outcome.
func (s *eventService) publishAudit(ctx context.Context, kind payload.Kind, sourceID string, recipients, sent, failed int) {
	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       string(kind),
		SourceID:   sourceID,
		Recipients: recipients,
		Sent:       sent,
		Failed:     failed,
		OccurredAt: time.Now(),
	}

	if err := s.publisher.PublishAuditEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish audit event",
			slog.String("kind", string(kind)),
			slog.String("source_id", sourceID),
			slog.Any("error", err),
		)
	}
}
