package entities

import (
	"strings"
	"time"
)

// SignatureSessionTTL bounds how long a signature link stays usable.
const SignatureSessionTTL = 30 * 24 * time.Hour

type SignatureSessionStatus string

const (
	SignatureSessionPending   SignatureSessionStatus = "pending"
	SignatureSessionCompleted SignatureSessionStatus = "completed"
	SignatureSessionExpired   SignatureSessionStatus = "expired"
)

var signatureSessionTransitions = map[SignatureSessionStatus][]SignatureSessionStatus{
	SignatureSessionPending: {SignatureSessionCompleted, SignatureSessionExpired},
}

func (s SignatureSessionStatus) CanTransitionTo(next SignatureSessionStatus) bool {
	return allowed(signatureSessionTransitions, s, next)
}

// SignatureSession is one signing attempt for a document.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (document_id-index): document_id
//
// Everything but Status is immutable once created. Expiry is evaluated
// lazily when the session is resolved.
type SignatureSession struct {
	ID          string                 `json:"id"`
	DocumentID  string                 `json:"document_id"`
	Token       string                 `json:"token"`
	SignerEmail string                 `json:"signer_email"`
	SignerName  string                 `json:"signer_name"`
	Status      SignatureSessionStatus `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

func (s SignatureSession) IsExpired(now time.Time) bool {
	return s.Status == SignatureSessionExpired || !now.Before(s.ExpiresAt)
}

// IsLive reports whether the session can still lead to a signature.
func (s SignatureSession) IsLive(now time.Time) bool {
	return s.Status == SignatureSessionPending && now.Before(s.ExpiresAt)
}

func (s SignatureSession) IsFor(email string) bool {
	return strings.EqualFold(strings.TrimSpace(s.SignerEmail), strings.TrimSpace(email))
}
