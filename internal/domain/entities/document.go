package entities

import "time"

// DocumentKind distinguishes the two financial documents handled by the pipeline.
type DocumentKind string

const (
	DocumentKindQuote   DocumentKind = "quote"
	DocumentKindInvoice DocumentKind = "invoice"
)

func (k DocumentKind) Valid() bool {
	return k == DocumentKindQuote || k == DocumentKindInvoice
}

// DocumentStatus is the single source of truth for the pipeline stage of a document.
//
// Status values only move through documentTransitions; callers never assign
// a status directly, repositories apply them as compare-and-swap updates.
type DocumentStatus string

const (
	DocumentStatusDraft         DocumentStatus = "draft"
	DocumentStatusSent          DocumentStatus = "sent"
	DocumentStatusSigned        DocumentStatus = "signed"
	DocumentStatusPartiallyPaid DocumentStatus = "partially_paid"
	DocumentStatusPaid          DocumentStatus = "paid"
	DocumentStatusCancelled     DocumentStatus = "cancelled"
)

var documentTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentStatusDraft:         {DocumentStatusSent, DocumentStatusCancelled},
	DocumentStatusSent:          {DocumentStatusSigned, DocumentStatusCancelled},
	DocumentStatusSigned:        {DocumentStatusPartiallyPaid, DocumentStatusPaid},
	DocumentStatusPartiallyPaid: {DocumentStatusPaid},
}

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusSent, DocumentStatusSigned,
		DocumentStatusPartiallyPaid, DocumentStatusPaid, DocumentStatusCancelled:
		return true
	}
	return false
}

func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	return allowed(documentTransitions, s, next)
}

// IsSigned reports whether a document in this status carries a signature.
func (s DocumentStatus) IsSigned() bool {
	return s == DocumentStatusSigned || s == DocumentStatusPartiallyPaid || s == DocumentStatusPaid
}

// IsPayable reports whether payment links may be opened for this status.
func (s DocumentStatus) IsPayable() bool {
	return s == DocumentStatusSigned || s == DocumentStatusPartiallyPaid
}

// SignatureRecord is the immutable signing payload bound to a document.
type SignatureRecord struct {
	SessionID   string    `json:"session_id"`
	SignerName  string    `json:"signer_name"`
	SignerEmail string    `json:"signer_email"`
	Payload     string    `json:"payload"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	SignedAt    time.Time `json:"signed_at"`
}

// Document is a quote or an invoice as seen by the trust and payment pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - AmountCents is the tax-included total (TTC) in minor units.
//   - AmountExclTaxCents is the pre-tax total (HT); it never exceeds AmountCents.
type Document struct {
	ID                 string           `json:"id"`
	Kind               DocumentKind     `json:"kind"`
	Number             string           `json:"number"`
	OwnerID            string           `json:"owner_id"`
	ClientName         string           `json:"client_name"`
	ClientEmail        string           `json:"client_email"`
	AmountExclTaxCents int64            `json:"amount_excl_tax_cents"`
	AmountCents        int64            `json:"amount_cents"`
	Currency           string           `json:"currency"`
	Status             DocumentStatus   `json:"status"`
	Signature          *SignatureRecord `json:"signature,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// TaxCents is the difference between the TTC and HT totals.
func (d Document) TaxCents() int64 {
	return d.AmountCents - d.AmountExclTaxCents
}
