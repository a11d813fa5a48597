package response

import (
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
)

type SignatureResponse struct {
	SignerName  string    `json:"signer_name"`
	SignerEmail string    `json:"signer_email"`
	SignedAt    time.Time `json:"signed_at"`
	IPAddress   string    `json:"ip_address,omitempty"`
}

// DocumentResponse renders amounts as fixed two-digit decimal strings.
type DocumentResponse struct {
	ID            string             `json:"id"`
	Kind          string             `json:"kind"`
	Number        string             `json:"number"`
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	Amount        string             `json:"amount" example:"1000.00"`
	AmountExclTax string             `json:"amount_excl_tax" example:"833.33"`
	Tax           string             `json:"tax" example:"166.67"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	Signature     *SignatureResponse `json:"signature,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	res := DocumentResponse{
		ID:            d.ID,
		Kind:          string(d.Kind),
		Number:        d.Number,
		ClientName:    d.ClientName,
		ClientEmail:   d.ClientEmail,
		Amount:        money.Format(d.AmountCents),
		AmountExclTax: money.Format(d.AmountExclTaxCents),
		Tax:           money.Format(d.TaxCents()),
		Currency:      d.Currency,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Signature != nil {
		res.Signature = &SignatureResponse{
			SignerName:  d.Signature.SignerName,
			SignerEmail: d.Signature.SignerEmail,
			SignedAt:    d.Signature.SignedAt,
			IPAddress:   d.Signature.IPAddress,
		}
	}
	return res
}

type EventResponse struct {
	Seq       int64          `json:"seq"`
	Type      string         `json:"event_type"`
	Data      map[string]any `json:"event_data,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// FromEvents leaves session tokens out; they are bearer credentials.
func FromEvents(events []entities.SignatureEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			Seq:       e.Seq,
			Type:      string(e.Type),
			Data:      e.Data,
			IPAddress: e.IPAddress,
			UserAgent: e.UserAgent,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type CertificateResponse struct {
	CertificateNumber string          `json:"certificate_number" example:"CERT-1A2B3C4D5E6F7A8B"`
	DocumentID        string          `json:"document_id"`
	DocumentNumber    string          `json:"document_number"`
	DocumentKind      string          `json:"document_kind"`
	Amount            string          `json:"amount"`
	Currency          string          `json:"currency"`
	Hash              string          `json:"hash"`
	SignerName        string          `json:"signer_name"`
	SignerEmail       string          `json:"signer_email"`
	SignedAt          time.Time       `json:"signed_at"`
	IPAddress         string          `json:"ip_address"`
	AuditTrail        []EventResponse `json:"audit_trail"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

func FromCertificate(c entities.Certificate) CertificateResponse {
	return CertificateResponse{
		CertificateNumber: c.Number,
		DocumentID:        c.DocumentID,
		DocumentNumber:    c.DocumentNumber,
		DocumentKind:      string(c.DocumentKind),
		Amount:            money.Format(c.AmountCents),
		Currency:          c.Currency,
		Hash:              c.Hash,
		SignerName:        c.SignerName,
		SignerEmail:       c.SignerEmail,
		SignedAt:          c.SignedAt,
		IPAddress:         c.IPAddress,
		AuditTrail:        FromEvents(c.AuditExcerpt),
		GeneratedAt:       c.GeneratedAt,
	}
}
