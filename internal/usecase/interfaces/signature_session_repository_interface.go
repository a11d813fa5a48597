package interfaces

import (
	"context"

	"doctrust/internal/domain/entities"
)

// SignatureCompletion is the single atomic write that closes a signature:
// session pending->completed, document From->signed with its signature
// record, and the signed audit event.
type SignatureCompletion struct {
	SessionID    string
	DocumentID   string
	DocumentFrom entities.DocumentStatus
	Signature    entities.SignatureRecord
	Event        entities.SignatureEvent
}

// ISignatureSessionRepository persists signature sessions. Create fails
// with ErrConditionFailed while another session of the same document and
// signer is still live at the new session's CreatedAt.
type ISignatureSessionRepository interface {
	Create(ctx context.Context, s entities.SignatureSession) error
	GetByID(ctx context.Context, id string) (entities.SignatureSession, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.SignatureSession, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.SignatureSessionStatus) error
	Complete(ctx context.Context, c SignatureCompletion) error
}
