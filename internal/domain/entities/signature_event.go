package entities

import "time"

type SignatureEventType string

const (
	EventViewed               SignatureEventType = "viewed"
	EventOTPSent              SignatureEventType = "otp_sent"
	EventOTPVerified          SignatureEventType = "otp_verified"
	EventSigned               SignatureEventType = "signed"
	EventCertificateGenerated SignatureEventType = "certificate_generated"
)

func (t SignatureEventType) Valid() bool {
	switch t {
	case EventViewed, EventOTPSent, EventOTPVerified, EventSigned, EventCertificateGenerated:
		return true
	}
	return false
}

// SignatureEvent is one entry of the append-only audit trail of a document.
//
// Storage model (DynamoDB):
//   - PK: document_id
//   - SK: seq (per-document counter, assigned server side)
//
// Events are never updated or deleted.
type SignatureEvent struct {
	ID           string             `json:"id"`
	DocumentID   string             `json:"document_id"`
	Seq          int64              `json:"seq"`
	SessionToken string             `json:"session_token,omitempty"`
	Type         SignatureEventType `json:"event_type"`
	Data         map[string]any     `json:"event_data,omitempty"`
	IPAddress    string             `json:"ip_address,omitempty"`
	UserAgent    string             `json:"user_agent,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// EventBefore orders events by server time, then by insertion sequence.
func EventBefore(a, b SignatureEvent) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}
