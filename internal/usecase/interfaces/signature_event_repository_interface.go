package interfaces

import (
	"context"

	"doctrust/internal/domain/entities"
)

// ISignatureEventRepository is the append-only audit trail store.
//
// There is intentionally no update or delete method.

type ISignatureEventRepository interface {
	NextSeq(ctx context.Context, documentID string) (int64, error)
	Append(ctx context.Context, e entities.SignatureEvent) error
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.SignatureEvent, error)
}
