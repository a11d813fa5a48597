package interfaces

import (
	"context"

	"doctrust/internal/domain/entities"
)

// ITokenRepository stores opaque public tokens.
//
// Create never overwrites: an existing value yields ErrConditionFailed.

type ITokenRepository interface {
	Create(ctx context.Context, t entities.Token) error
	Get(ctx context.Context, value string) (entities.Token, error)
}
