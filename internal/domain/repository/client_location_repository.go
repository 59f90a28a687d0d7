package repository

import (
	"context"

	"notifier/internal/domain/entity"
)

// ClientLocationRepository lists client positions for the proximity fan-out.
type ClientLocationRepository interface {
	// ListAll returns every client-location record. The fan-out filters by
	// distance in memory; the store offers no geo queries.
	ListAll(ctx context.Context) ([]*entity.ClientLocation, error)
}
