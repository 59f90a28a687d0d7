package firestore

import (
	"context"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/repository"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type clientLocationRepository struct {
	client *cloudfs.Client
}

// NewClientLocationRepository creates a Firestore-backed client-location
// repository.
func NewClientLocationRepository(client *cloudfs.Client) repository.ClientLocationRepository {
	return &clientLocationRepository{client: client}
}

// ListAll returns every client-location record. The collection is small
// enough that the fan-out filters by distance in memory.
func (r *clientLocationRepository) ListAll(ctx context.Context) ([]*entity.ClientLocation, error) {
	iter := r.client.Collection(collectionClientLocations).Documents(ctx)
	defer iter.Stop()

	locations := make([]*entity.ClientLocation, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list client locations")
		}

		location := &entity.ClientLocation{}
		if err := doc.DataTo(location); err != nil {
			return nil, errors.Wrapf(err, "failed to decode client_locations/%s", doc.Ref.ID)
		}
		location.ClientID = doc.Ref.ID

		locations = append(locations, location)
	}

	return locations, nil
}
