package firestore

import (
	"context"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *cloudfs.Client
}

// NewUserRepository creates a Firestore-backed user repository.
func NewUserRepository(client *cloudfs.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID fetches a recipient record from the users collection.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.Recipient, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrRecordNotFound.WithDetails("users/" + id)
		}

		return nil, errors.Wrapf(err, "failed to read users/%s", id)
	}

	recipient := &entity.Recipient{}
	if err := doc.DataTo(recipient); err != nil {
		return nil, errors.Wrapf(err, "failed to decode users/%s", id)
	}
	recipient.ID = doc.Ref.ID

	return recipient, nil
}
