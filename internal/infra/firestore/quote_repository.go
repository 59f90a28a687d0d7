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

type quoteRepository struct {
	client *cloudfs.Client
}

// NewQuoteRepository creates a Firestore-backed quote repository.
func NewQuoteRepository(client *cloudfs.Client) repository.QuoteRepository {
	return &quoteRepository{client: client}
}

// MarkNotified sets the notified flag on the quote inside a transaction,
// gated on the flag's prior value. Returns false when the flag was already
// set so a redelivered trigger dispatches at most once.
func (r *quoteRepository) MarkNotified(ctx context.Context, quoteID string, at time.Time) (bool, error) {
	ref := r.client.Collection(collectionQuotes).Doc(quoteID)
	updated := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *cloudfs.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domainerrors.ErrRecordNotFound.WithDetails("quotes/" + quoteID)
			}

			return errors.Wrapf(err, "failed to read quotes/%s", quoteID)
		}

		var quote entity.Quote
		if err := doc.DataTo(&quote); err != nil {
			return errors.Wrapf(err, "failed to decode quotes/%s", quoteID)
		}

		if quote.NotificationSent {
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
