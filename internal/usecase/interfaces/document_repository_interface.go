package interfaces

import (
	"context"

	"doctrust/internal/domain/entities"
)

// IDocumentRepository abstracts persistence for quotes and invoices.
//
// GetByID returns a zero Document when the id does not exist.
// UpdateStatus is a compare-and-swap: it only applies when the stored status
// equals from, otherwise it returns ErrConditionFailed.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.DocumentStatus) (entities.Document, error)
}

// IAccountSettingsRepository reads per-account pipeline configuration.
type IAccountSettingsRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (entities.AccountSettings, error)
}
