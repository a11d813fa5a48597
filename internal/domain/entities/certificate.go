package entities

import "time"

// Certificate is the tamper-evidence record of a completed signature.
//
// It is derived from the document and its audit trail and is never stored;
// each generation is itself recorded as a certificate_generated event.
type Certificate struct {
	Number         string           `json:"certificate_number"`
	DocumentID     string           `json:"document_id"`
	DocumentNumber string           `json:"document_number"`
	DocumentKind   DocumentKind     `json:"document_kind"`
	AmountCents    int64            `json:"amount_cents"`
	Currency       string           `json:"currency"`
	Hash           string           `json:"hash"`
	SignerName     string           `json:"signer_name"`
	SignerEmail    string           `json:"signer_email"`
	SignedAt       time.Time        `json:"signed_at"`
	IPAddress      string           `json:"ip_address"`
	AuditExcerpt   []SignatureEvent `json:"audit_excerpt"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
