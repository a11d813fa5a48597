package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateDocumentCommand registers a quote or invoice with the pipeline.
//
// Document authoring belongs to the surrounding application; this is the
// minimal write the pipeline needs to have something to sign and collect.
type CreateDocumentCommand struct {
	Kind               entities.DocumentKind
	Number             string
	ClientName         string
	ClientEmail        string
	AmountCents        int64
	AmountExclTaxCents int64
	Currency           string
}

type IDocumentUseCase interface {
	Create(ctx context.Context, ownerID string, cmd CreateDocumentCommand) (entities.Document, error)
	Get(ctx context.Context, ownerID, id string) (entities.Document, error)
}

type DocumentUseCase struct {
	repo interfaces.IDocumentRepository
	now  func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, now: time.Now}
}

func (u *DocumentUseCase) Create(ctx context.Context, ownerID string, cmd CreateDocumentCommand) (entities.Document, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || !cmd.Kind.Valid() {
		return entities.Document{}, ErrInvalidDocument
	}
	if cmd.AmountCents <= 0 || cmd.AmountExclTaxCents < 0 || cmd.AmountExclTaxCents > cmd.AmountCents {
		return entities.Document{}, ErrInvalidDocument
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(cmd.ClientEmail)); err != nil {
		return entities.Document{}, ErrInvalidDocument
	}
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = "EUR"
	}

	now := u.now().UTC()
	d := entities.Document{
		ID:                 uuid.NewString(),
		Kind:               cmd.Kind,
		Number:             strings.TrimSpace(cmd.Number),
		OwnerID:            ownerID,
		ClientName:         strings.TrimSpace(cmd.ClientName),
		ClientEmail:        strings.TrimSpace(cmd.ClientEmail),
		AmountCents:        cmd.AmountCents,
		AmountExclTaxCents: cmd.AmountExclTaxCents,
		Currency:           currency,
		Status:             entities.DocumentStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DocumentUseCase) Get(ctx context.Context, ownerID, id string) (entities.Document, error) {
	return loadOwnedDocument(ctx, u.repo, ownerID, id)
}

func loadDocument(ctx context.Context, repo interfaces.IDocumentRepository, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

// loadOwnedDocument hides documents of other accounts behind the same
// not-found error the caller would get for an unknown id.
func loadOwnedDocument(ctx context.Context, repo interfaces.IDocumentRepository, ownerID, id string) (entities.Document, error) {
	d, err := loadDocument(ctx, repo, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.OwnerID != ownerID {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}
