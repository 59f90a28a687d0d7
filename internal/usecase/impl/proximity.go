package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/payload"
	"notifier/internal/geo"
	"notifier/internal/usecase"
)

// dispatchOutcome records one client's delivery result during the fan-out.
type dispatchOutcome struct {
	ClientID       string
	DistanceMeters float64
	DeliveryID     string
	Err            error
}

// HandleVendorNearby notifies every client within the proximity radius of
// the vendor's new position. The event is ignored when the vendor moved
// less than the minimum displacement.
func (s *eventService) HandleVendorNearby(ctx context.Context, event *usecase.VendorLocationEvent) (*usecase.Result, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	displacement := geo.Distance(
		event.PreviousData.Location.Point(),
		event.NewData.Location.Point(),
	)

	if displacement < s.minDisplacementMeters {
		return &usecase.Result{Message: "Distancia insuficiente para notificar"}, nil
	}

	clients, err := s.clientLocations.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	outcomes := s.fanOut(ctx, logger, event, clients)

	var sent, failed int
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++

			continue
		}
		sent++
	}

	logger.Info("vendor-nearby fan-out finished",
		slog.String("vendor_id", event.VendorID),
		slog.Float64("displacement_m", displacement),
		slog.Int("candidates", len(clients)),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	s.publishAudit(ctx, payload.KindVendorNearby, event.VendorID, len(outcomes), sent, failed)

	return &usecase.Result{
		Message: fmt.Sprintf("%d clientes notificados", sent),
		Sent:    sent,
		Failed:  failed,
	}, nil
}

// fanOut dispatches one notification per qualifying client. Each dispatch
// is an independent unit of work: one client's failure never aborts
// delivery to the rest.
func (s *eventService) fanOut(
	ctx context.Context,
	logger *slog.Logger,
	event *usecase.VendorLocationEvent,
	clients []*entity.ClientLocation,
) []dispatchOutcome {
	vendorPoint := event.NewData.Location.Point()
	now := time.Now()

	outcomes := make([]dispatchOutcome, 0, len(clients))
	for _, client := range clients {
		distance := geo.Distance(vendorPoint, client.Location.Point())
		if !(distance < s.proximityRadiusMeters) {
			continue
		}

		if client.FCMToken == "" {
			logger.Debug("skipping nearby client without device token",
				slog.String("client_id", client.ClientID),
			)

			continue
		}

		p := payload.VendorNearby(event.VendorID, distance, now)

		deliveryID, err := s.dispatcher.Send(ctx, client.FCMToken, p.Title, p.Body, p.Data)
		if err != nil {
			logger.Warn("failed to dispatch vendor-nearby notification",
				slog.String("vendor_id", event.VendorID),
				slog.String("client_id", client.ClientID),
				slog.Any("error", err),
			)
		}

		outcomes = append(outcomes, dispatchOutcome{
			ClientID:       client.ClientID,
			DistanceMeters: distance,
			DeliveryID:     deliveryID,
			Err:            err,
		})
	}

	return outcomes
}
