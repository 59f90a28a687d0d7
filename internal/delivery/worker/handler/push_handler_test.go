package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notifier/config"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEventUsecase struct {
	mock.Mock
}

func (m *mockEventUsecase) HandleNewQuote(ctx context.Context, event *usecase.QuoteEvent) (*usecase.Result, error) {
	args := m.Called(ctx, event)
	if result, ok := args.Get(0).(*usecase.Result); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEventUsecase) HandlePaymentReceived(ctx context.Context, event *usecase.PaymentEvent) (*usecase.Result, error) {
	args := m.Called(ctx, event)
	if result, ok := args.Get(0).(*usecase.Result); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEventUsecase) HandleOrderUpdate(ctx context.Context, event *usecase.OrderEvent) (*usecase.Result, error) {
	args := m.Called(ctx, event)
	if result, ok := args.Get(0).(*usecase.Result); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEventUsecase) HandleVendorNearby(ctx context.Context, event *usecase.VendorLocationEvent) (*usecase.Result, error) {
	args := m.Called(ctx, event)
	if result, ok := args.Get(0).(*usecase.Result); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func newPushHandler(uc usecase.EventUsecase) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  slog.Default(),
		Usecase: uc,
	})
}

func pushRequest(t *testing.T, eventType string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/test/subscriptions/events-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{
		"eventType":  eventType,
		"request_id": "req-1",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_QuoteEvent(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	uc.On("HandleNewQuote", mock.Anything, mock.MatchedBy(func(event *usecase.QuoteEvent) bool {
		return event.QuoteID == "quote-1" && event.QuoteData.VendorID == "vendor-1"
	})).Return(&usecase.Result{Sent: 1}, nil)

	c, rec := pushRequest(t, "new_quote", usecase.QuoteEvent{
		QuoteID:   "quote-1",
		QuoteData: usecase.QuoteData{VendorID: "vendor-1"},
	})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestPushHandler_PaymentEvent(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	uc.On("HandlePaymentReceived", mock.Anything, mock.Anything).
		Return(&usecase.Result{Sent: 1}, nil)

	c, rec := pushRequest(t, "payment_received", usecase.PaymentEvent{
		PaymentID:   "payment-1",
		PaymentData: usecase.PaymentData{VendorID: "vendor-2"},
	})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_OrderEvent(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	uc.On("HandleOrderUpdate", mock.Anything, mock.MatchedBy(func(event *usecase.OrderEvent) bool {
		return event.NewData.Status == "shipped"
	})).Return(&usecase.Result{Sent: 1}, nil)

	c, rec := pushRequest(t, "order_update", usecase.OrderEvent{
		OrderID:      "order-1",
		NewData:      usecase.OrderSnapshot{ClientID: "client-1", Status: "shipped"},
		PreviousData: usecase.OrderSnapshot{ClientID: "client-1", Status: "pending"},
	})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VendorLocationEvent(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	uc.On("HandleVendorNearby", mock.Anything, mock.Anything).
		Return(&usecase.Result{Message: "1 clientes notificados", Sent: 1}, nil)

	c, rec := pushRequest(t, "vendor_nearby", usecase.VendorLocationEvent{VendorID: "vendor-1"})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailureReturns503(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	uc.On("HandleNewQuote", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrStoreWriteFailed)

	c, rec := pushRequest(t, "new_quote", usecase.QuoteEvent{
		QuoteID:   "quote-1",
		QuoteData: usecase.QuoteData{VendorID: "vendor-1"},
	})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureAcksWith200(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	// A vanished vendor never resolves on redelivery, so the message is acked
	uc.On("HandleNewQuote", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrVendorNotFound)

	c, rec := pushRequest(t, "new_quote", usecase.QuoteEvent{
		QuoteID:   "quote-1",
		QuoteData: usecase.QuoteData{VendorID: "ghost"},
	})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownEventTypeAcksWith200(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	c, rec := pushRequest(t, "mystery_event", map[string]string{"foo": "bar"})

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertNotCalled(t, "HandleNewQuote", mock.Anything, mock.Anything)
}

func TestPushHandler_InvalidBase64Data(t *testing.T) {
	uc := &mockEventUsecase{}
	h := newPushHandler(uc)

	msg := PubSubMessage{}
	msg.Message.Data = "not-base64!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
