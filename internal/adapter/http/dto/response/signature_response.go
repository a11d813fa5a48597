package response

import (
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase"
)

type SignatureSessionResponse struct {
	SessionID   string    `json:"session_id"`
	DocumentID  string    `json:"document_id"`
	SignerEmail string    `json:"signer_email"`
	SignerName  string    `json:"signer_name"`
	Status      string    `json:"status"`
	SignURL     string    `json:"sign_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	Reused      bool      `json:"reused"`
	EmailSent   bool      `json:"email_sent"`
}

func FromIssuedSession(s usecase.IssuedSession) SignatureSessionResponse {
	return SignatureSessionResponse{
		SessionID:   s.Session.ID,
		DocumentID:  s.Session.DocumentID,
		SignerEmail: s.Session.SignerEmail,
		SignerName:  s.Session.SignerName,
		Status:      string(s.Session.Status),
		SignURL:     s.URL,
		ExpiresAt:   s.Session.ExpiresAt,
		Reused:      s.Reused,
		EmailSent:   s.EmailSent,
	}
}

// SigningPageResponse is what the public signing page renders. The signer
// email is masked; the signer proves it by receiving the code.
type SigningPageResponse struct {
	DocumentNumber string    `json:"document_number"`
	DocumentKind   string    `json:"document_kind"`
	ClientName     string    `json:"client_name"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	DocumentStatus string    `json:"document_status"`
	SignerName     string    `json:"signer_name"`
	SignerEmail    string    `json:"signer_email_hint" example:"c*****@example.com"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func FromSessionView(v usecase.SessionView) SigningPageResponse {
	return SigningPageResponse{
		DocumentNumber: v.Document.Number,
		DocumentKind:   string(v.Document.Kind),
		ClientName:     v.Document.ClientName,
		Amount:         money.Format(v.Document.AmountCents),
		Currency:       v.Document.Currency,
		DocumentStatus: string(v.Document.Status),
		SignerName:     v.Session.SignerName,
		SignerEmail:    MaskEmail(v.Session.SignerEmail),
		ExpiresAt:      v.Session.ExpiresAt,
	}
}

type OTPSentResponse struct {
	Sent      bool      `json:"sent"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromOTPChallenge(c entities.OTPChallenge) OTPSentResponse {
	return OTPSentResponse{Sent: true, ExpiresAt: c.ExpiresAt}
}

type OTPVerifiedResponse struct {
	Verified bool `json:"verified"`
}

type CompletedSignatureResponse struct {
	DocumentID        string    `json:"document_id"`
	DocumentStatus    string    `json:"document_status"`
	CertificateNumber string    `json:"certificate_number"`
	SignedAt          time.Time `json:"signed_at"`
}

func FromCompletedSignature(c usecase.CompletedSignature) CompletedSignatureResponse {
	return CompletedSignatureResponse{
		DocumentID:        c.DocumentID,
		DocumentStatus:    string(c.DocumentStatus),
		CertificateNumber: c.CertificateNumber,
		SignedAt:          c.SignedAt,
	}
}

// MaskEmail keeps the first letter of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return ""
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
