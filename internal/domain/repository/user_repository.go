// Package repository defines the record-store access interfaces.
// Records live in an external document store keyed by collection and ID;
// implementations hold request-scoped copies only.
package repository

import (
	"context"

	"notifier/internal/domain/entity"
)

// UserRepository resolves notification recipients by document ID.
type UserRepository interface {
	// FindByID returns the recipient record, or ErrRecordNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.Recipient, error)
}
