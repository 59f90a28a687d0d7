package firestore

import (
	"context"
	"time"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type orderRepository struct {
	client *cloudfs.Client
}

// NewOrderRepository creates a Firestore-backed order repository.
func NewOrderRepository(client *cloudfs.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// MarkNotified records the notified status transition on the order. Unlike
// quotes and payments the guard is per status: a redelivery for the same
// status is skipped, the next genuine transition notifies again.
func (r *orderRepository) MarkNotified(ctx context.Context, orderID, orderStatus string, at time.Time) (bool, error) {
	ref := r.client.Collection(collectionOrders).Doc(orderID)
	updated := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *cloudfs.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domainerrors.ErrRecordNotFound.WithDetails("orders/" + orderID)
			}

			return errors.Wrapf(err, "failed to read orders/%s", orderID)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return errors.Wrapf(err, "failed to decode orders/%s", orderID)
		}

		if order.LastNotifiedStatus == orderStatus {
			updated = false

			return nil
		}

		updated = true

		return tx.Update(ref, []cloudfs.Update{
			{Path: "lastNotificationSent", Value: true},
			{Path: "lastNotificationSentAt", Value: at},
			{Path: "lastNotifiedStatus", Value: orderStatus},
		})
	})
	if err != nil {
		updated = false
	}

	return updated, err
}
