package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxTokenCollisions = 3

// ITokenUseCase mints and resolves opaque single-purpose tokens.
type ITokenUseCase interface {
	Issue(ctx context.Context, purpose entities.TokenPurpose, documentID, subjectID string, ttl time.Duration) (entities.Token, error)
	IssueWithValue(ctx context.Context, value string, purpose entities.TokenPurpose, documentID, subjectID string, ttl time.Duration) (entities.Token, error)
	Resolve(ctx context.Context, value string) (entities.TokenResolution, error)
	ResolveFor(ctx context.Context, value string, purpose entities.TokenPurpose) (entities.TokenResolution, error)
}

type TokenUseCase struct {
	repo interfaces.ITokenRepository
	now  func() time.Time
}

var _ ITokenUseCase = (*TokenUseCase)(nil)

func NewTokenUseCase(repo interfaces.ITokenRepository) *TokenUseCase {
	return &TokenUseCase{repo: repo, now: time.Now}
}

// NewTokenValue returns a random (version 4) UUID: 122 bits from crypto/rand.
func NewTokenValue() string {
	return uuid.NewString()
}

func (u *TokenUseCase) Issue(ctx context.Context, purpose entities.TokenPurpose, documentID, subjectID string, ttl time.Duration) (entities.Token, error) {
	if purpose != entities.TokenPurposeSignature && purpose != entities.TokenPurposePayment {
		return entities.Token{}, kindError(ErrValidation, "unknown token purpose")
	}
	if strings.TrimSpace(documentID) == "" || ttl <= 0 {
		return entities.Token{}, kindError(ErrValidation, "token needs a document and a ttl")
	}

	now := u.now().UTC()
	for i := 0; i < maxTokenCollisions; i++ {
		t := entities.Token{
			Value:      NewTokenValue(),
			Purpose:    purpose,
			DocumentID: documentID,
			SubjectID:  subjectID,
			ExpiresAt:  now.Add(ttl),
			CreatedAt:  now,
		}
		err := u.repo.Create(ctx, t)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Token{}, err
		}
	}
	return entities.Token{}, kindError(ErrConfiguration, "token space exhausted")
}

// IssueWithValue registers a caller-minted value, used when the value must
// exist before the record it unlocks (payment ids).
func (u *TokenUseCase) IssueWithValue(ctx context.Context, value string, purpose entities.TokenPurpose, documentID, subjectID string, ttl time.Duration) (entities.Token, error) {
	now := u.now().UTC()
	t := entities.Token{
		Value:      value,
		Purpose:    purpose,
		DocumentID: documentID,
		SubjectID:  subjectID,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return entities.Token{}, err
	}
	return t, nil
}

func (u *TokenUseCase) Resolve(ctx context.Context, value string) (entities.TokenResolution, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.TokenResolution{}, ErrTokenNotFound
	}
	t, err := u.repo.Get(ctx, value)
	if err != nil {
		return entities.TokenResolution{}, err
	}
	if t.Value == "" {
		return entities.TokenResolution{}, ErrTokenNotFound
	}
	return entities.TokenResolution{
		DocumentID: t.DocumentID,
		SubjectID:  t.SubjectID,
		Purpose:    t.Purpose,
		Expired:    t.IsExpired(u.now()),
	}, nil
}

// ResolveFor fails closed: a token minted for another purpose is reported
// exactly like an unknown one.
func (u *TokenUseCase) ResolveFor(ctx context.Context, value string, purpose entities.TokenPurpose) (entities.TokenResolution, error) {
	res, err := u.Resolve(ctx, value)
	if err != nil {
		return entities.TokenResolution{}, err
	}
	if res.Purpose != purpose {
		return entities.TokenResolution{}, ErrTokenNotFound
	}
	if res.Expired {
		return entities.TokenResolution{}, ErrTokenExpired
	}
	return res, nil
}
