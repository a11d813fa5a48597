package interfaces

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
)

// IOTPChallengeRepository persists OTP challenges.
//
//   - Create stores the challenge, makes it the live challenge of its session
//     token and appends the otp_sent event, atomically.
//   - GetLive returns the most recently issued challenge of a session token
//     (zero value when none).
//   - ReserveAttempt increments the attempt counter only while it is below max
//     and the challenge is not consumed; otherwise ErrConditionFailed. It
//     returns the counter after the increment.
//   - Consume flips consumed false->true and appends the otp_verified event
//     atomically; a challenge already consumed yields ErrConditionFailed.

type IOTPChallengeRepository interface {
	Create(ctx context.Context, c entities.OTPChallenge, sent entities.SignatureEvent) error
	GetLive(ctx context.Context, sessionToken string) (entities.OTPChallenge, error)
	ReserveAttempt(ctx context.Context, id string, max int) (int, error)
	Consume(ctx context.Context, id string, at time.Time, verified entities.SignatureEvent) error
}
