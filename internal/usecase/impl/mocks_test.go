package impl

import (
	"context"
	"time"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.Recipient, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*entity.Recipient); ok {
		return rec, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockQuoteRepository struct {
	mock.Mock
}

func (m *mockQuoteRepository) MarkNotified(ctx context.Context, quoteID string, at time.Time) (bool, error) {
	args := m.Called(ctx, quoteID, at)

	return args.Bool(0), args.Error(1)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) MarkNotified(ctx context.Context, paymentID string, at time.Time) (bool, error) {
	args := m.Called(ctx, paymentID, at)

	return args.Bool(0), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) MarkNotified(ctx context.Context, orderID, status string, at time.Time) (bool, error) {
	args := m.Called(ctx, orderID, status, at)

	return args.Bool(0), args.Error(1)
}

type mockClientLocationRepository struct {
	mock.Mock
}

func (m *mockClientLocationRepository) ListAll(ctx context.Context) ([]*entity.ClientLocation, error) {
	args := m.Called(ctx)
	if locations, ok := args.Get(0).([]*entity.ClientLocation); ok {
		return locations, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPushDispatcher struct {
	mock.Mock
}

func (m *mockPushDispatcher) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	args := m.Called(ctx, token, title, body, data)

	return args.String(0), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
