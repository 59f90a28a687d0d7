// Package handler processes Pub/Sub push deliveries for the worker binary.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/constants"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/payload"
	"notifier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler handles Pub/Sub push messages carrying platform events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	uc             usecase.EventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Usecase usecase.EventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-managed subscriptions carry a verifiable OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		uc:             params.Usecase,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes["eventType"]
	reqLogger.Info("[Worker] Processing platform event",
		slog.String("event_type", eventType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.dispatchEvent(ctx, eventType, data)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; permanent failures ack with
		// 200 to stop the retry loop.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed",
		slog.String("event_type", eventType),
		slog.String("message", result.Message),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// dispatchEvent routes the decoded event to the matching usecase operation
func (h *PushHandler) dispatchEvent(ctx context.Context, eventType string, data []byte) (*usecase.Result, error) {
	switch payload.Kind(eventType) {
	case payload.KindNewQuote:
		var event usecase.QuoteEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, errors.WithStack(err)
		}

		return h.uc.HandleNewQuote(ctx, &event)
	case payload.KindPaymentReceived:
		var event usecase.PaymentEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, errors.WithStack(err)
		}

		return h.uc.HandlePaymentReceived(ctx, &event)
	case payload.KindOrderUpdate:
		var event usecase.OrderEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, errors.WithStack(err)
		}

		return h.uc.HandleOrderUpdate(ctx, &event)
	case payload.KindVendorNearby:
		var event usecase.VendorLocationEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, errors.WithStack(err)
		}

		return h.uc.HandleVendorNearby(ctx, &event)
	default:
		return nil, errors.Errorf("unknown event type: %q", eventType)
	}
}

// extractRequestID extracts request_id from message attributes, the existing
// context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryableError reports whether the failure is worth a redelivery.
// Store and delivery outages are transient; everything else is permanent
// for this message.
func isRetryableError(err error) bool {
	return errors.Is(err, domainerrors.ErrStoreReadFailed) ||
		errors.Is(err, domainerrors.ErrStoreWriteFailed) ||
		errors.Is(err, domainerrors.ErrDeliveryFailed)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match this push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	tokenPayload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if tokenPayload.Issuer != "accounts.google.com" && tokenPayload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", tokenPayload.Issuer)
	}

	if emailVerified, ok := tokenPayload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
