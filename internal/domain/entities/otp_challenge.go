package entities

import "time"

const (
	OTPTTL         = 10 * time.Minute
	OTPCodeLength  = 6
	OTPMaxAttempts = 5
)

// OTPChallenge is a one-time code bound to an email and a signature session.
//
// Only the hash of the code is persisted. Several challenges may exist for a
// session; the live one is the most recently issued.
type OTPChallenge struct {
	ID           string     `json:"id"`
	DocumentID   string     `json:"document_id"`
	SessionToken string     `json:"session_token"`
	Email        string     `json:"email"`
	CodeHash     string     `json:"-"`
	ExpiresAt    time.Time  `json:"expires_at"`
	IPAddress    string     `json:"ip_address"`
	Attempts     int        `json:"attempts"`
	Consumed     bool       `json:"consumed"`
	ConsumedAt   *time.Time `json:"consumed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsExpired is true strictly after ExpiresAt.
func (c OTPChallenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
