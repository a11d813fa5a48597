package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventInput describes an audit event before the server stamps it.
type EventInput struct {
	DocumentID   string
	SessionToken string
	Type         entities.SignatureEventType
	Data         map[string]any
	IPAddress    string
	UserAgent    string
}

// Recorder is the audit dependency of every security-relevant transition.
//
// Prepare stamps an event (id, sequence, server time) without storing it so
// the caller can persist it in the same atomic write as its transition.
// Record stamps and stores it on its own.
type Recorder interface {
	Prepare(ctx context.Context, in EventInput) (entities.SignatureEvent, error)
	Record(ctx context.Context, in EventInput) (entities.SignatureEvent, error)
}

type IAuditUseCase interface {
	Recorder
	History(ctx context.Context, documentID string) ([]entities.SignatureEvent, error)
	HistoryForOwner(ctx context.Context, ownerID, documentID string) ([]entities.SignatureEvent, error)
}

type AuditUseCase struct {
	repo      interfaces.ISignatureEventRepository
	documents interfaces.IDocumentRepository
	now       func() time.Time
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.ISignatureEventRepository, documents interfaces.IDocumentRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo, documents: documents, now: time.Now}
}

func (u *AuditUseCase) Prepare(ctx context.Context, in EventInput) (entities.SignatureEvent, error) {
	documentID := strings.TrimSpace(in.DocumentID)
	if documentID == "" || !in.Type.Valid() {
		return entities.SignatureEvent{}, kindError(ErrValidation, "invalid audit event")
	}
	seq, err := u.repo.NextSeq(ctx, documentID)
	if err != nil {
		return entities.SignatureEvent{}, err
	}
	return entities.SignatureEvent{
		ID:           uuid.NewString(),
		DocumentID:   documentID,
		Seq:          seq,
		SessionToken: in.SessionToken,
		Type:         in.Type,
		Data:         in.Data,
		IPAddress:    in.IPAddress,
		UserAgent:    in.UserAgent,
		CreatedAt:    u.now().UTC(),
	}, nil
}

func (u *AuditUseCase) Record(ctx context.Context, in EventInput) (entities.SignatureEvent, error) {
	e, err := u.Prepare(ctx, in)
	if err != nil {
		return entities.SignatureEvent{}, err
	}
	if err := u.repo.Append(ctx, e); err != nil {
		zap.S().Errorw("[audit][usecase] append failed", "document_id", e.DocumentID, "event_type", e.Type, "error", err)
		return entities.SignatureEvent{}, err
	}
	zap.S().Infow("[audit][usecase] event recorded", "document_id", e.DocumentID, "event_type", e.Type, "seq", e.Seq)
	return e, nil
}

func (u *AuditUseCase) History(ctx context.Context, documentID string) ([]entities.SignatureEvent, error) {
	events, err := u.repo.ListByDocumentID(ctx, strings.TrimSpace(documentID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return entities.EventBefore(events[i], events[j]) })
	return events, nil
}

func (u *AuditUseCase) HistoryForOwner(ctx context.Context, ownerID, documentID string) ([]entities.SignatureEvent, error) {
	if _, err := loadOwnedDocument(ctx, u.documents, ownerID, documentID); err != nil {
		return nil, err
	}
	return u.History(ctx, documentID)
}

// hasEvent reports whether the history holds an event of type t for the
// given session token.
func hasEvent(events []entities.SignatureEvent, t entities.SignatureEventType, sessionToken string) bool {
	for _, e := range events {
		if e.Type == t && e.SessionToken == sessionToken {
			return true
		}
	}
	return false
}
