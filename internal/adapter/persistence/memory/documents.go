package memory

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"
)

type DocumentRepository struct{ s *Store }

var _ interfaces.IDocumentRepository = (*DocumentRepository)(nil)

func (r *DocumentRepository) Create(_ context.Context, d entities.Document) (entities.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.documents[d.ID]; ok {
		return entities.Document{}, interfaces.ErrConditionFailed
	}
	r.s.documents[d.ID] = copyDocument(d)
	return d, nil
}

func (r *DocumentRepository) GetByID(_ context.Context, id string) (entities.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyDocument(r.s.documents[id]), nil
}

func (r *DocumentRepository) UpdateStatus(_ context.Context, id string, from, to entities.DocumentStatus) (entities.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.documents[id]
	if !ok || d.Status != from {
		return entities.Document{}, interfaces.ErrConditionFailed
	}
	d.Status = to
	d.UpdatedAt = time.Now().UTC()
	r.s.documents[id] = d
	return copyDocument(d), nil
}

type AccountSettingsRepository struct{ s *Store }

var _ interfaces.IAccountSettingsRepository = (*AccountSettingsRepository)(nil)

func (r *AccountSettingsRepository) GetByOwnerID(_ context.Context, ownerID string) (entities.AccountSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.accounts[ownerID], nil
}

// Put stores account settings; there is no HTTP surface for it.
func (r *AccountSettingsRepository) Put(_ context.Context, a entities.AccountSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.accounts[a.OwnerID] = a
	return nil
}

type TokenRepository struct{ s *Store }

var _ interfaces.ITokenRepository = (*TokenRepository)(nil)

func (r *TokenRepository) Create(_ context.Context, t entities.Token) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tokens[t.Value]; ok {
		return interfaces.ErrConditionFailed
	}
	r.s.tokens[t.Value] = t
	return nil
}

func (r *TokenRepository) Get(_ context.Context, value string) (entities.Token, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.tokens[value], nil
}
