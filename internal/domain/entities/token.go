package entities

import "time"

type TokenPurpose string

const (
	TokenPurposeSignature TokenPurpose = "signature"
	TokenPurposePayment   TokenPurpose = "payment"
)

// Token is an opaque, single-purpose public credential.
//
// SubjectID points at the record the token unlocks (signature session or
// payment) and DocumentID at the document it is bound to.
type Token struct {
	Value      string       `json:"-"`
	Purpose    TokenPurpose `json:"purpose"`
	DocumentID string       `json:"document_id"`
	SubjectID  string       `json:"subject_id"`
	ExpiresAt  time.Time    `json:"expires_at"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (t Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenResolution is what a token reveals to its holder.
type TokenResolution struct {
	DocumentID string
	SubjectID  string
	Purpose    TokenPurpose
	Expired    bool
}
