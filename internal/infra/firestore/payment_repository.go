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

type paymentRepository struct {
	client *cloudfs.Client
}

// NewPaymentRepository creates a Firestore-backed payment repository.
func NewPaymentRepository(client *cloudfs.Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

// MarkNotified performs the one-shot notified-flag compare-and-swap on the
// payment, mirroring the quote repository.
func (r *paymentRepository) MarkNotified(ctx context.Context, paymentID string, at time.Time) (bool, error) {
	ref := r.client.Collection(collectionPayments).Doc(paymentID)
	updated := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *cloudfs.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domainerrors.ErrRecordNotFound.WithDetails("payments/" + paymentID)
			}

			return errors.Wrapf(err, "failed to read payments/%s", paymentID)
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return errors.Wrapf(err, "failed to decode payments/%s", paymentID)
		}

		if payment.NotificationSent {
			updated = false

			return nil
		}

		updated = true

		return tx.Update(ref, []cloudfs.Update{
			{Path: "notificationSent", Value: true},
			{Path: "notificationSentAt", Value: at},
		})
	})
	if err != nil {
		updated = false
	}

	return updated, err
}
