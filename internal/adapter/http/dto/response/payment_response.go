package response

import (
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase"
)

// PaymentResponse omits the payment token; it is only handed out inside payment_url.
type PaymentResponse struct {
	DocumentID    string     `json:"document_id"`
	PaymentType   string     `json:"payment_type"`
	InstallmentID string     `json:"installment_id,omitempty"`
	Amount        string     `json:"amount" example:"300.00"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	Paid          bool       `json:"paid"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		DocumentID:    p.DocumentID,
		PaymentType:   string(p.Type),
		InstallmentID: p.InstallmentID,
		Amount:        money.Format(p.AmountCents),
		Currency:      p.Currency,
		Status:        string(p.Status),
		Paid:          p.Paid,
		CreatedAt:     p.CreatedAt,
		PaidAt:        p.PaidAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentLinkResponse struct {
	PaymentResponse
	PaymentURL string `json:"payment_url"`
	Reused     bool   `json:"reused"`
}

func FromPaymentLink(l usecase.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{PaymentResponse: FromPayment(l.Payment), PaymentURL: l.URL, Reused: l.Reused}
}

// PaymentPageResponse is what the public payment page renders before redirecting to checkout.
type PaymentPageResponse struct {
	DocumentNumber string `json:"document_number"`
	DocumentKind   string `json:"document_kind"`
	ClientName     string `json:"client_name"`
	PaymentType    string `json:"payment_type"`
	Amount         string `json:"amount"`
	Remaining      string `json:"remaining"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
	CheckoutURL    string `json:"checkout_url,omitempty"`
}

func FromPaymentPage(p usecase.PaymentPage) PaymentPageResponse {
	res := PaymentPageResponse{
		DocumentNumber: p.DocumentNumber,
		DocumentKind:   string(p.DocumentKind),
		ClientName:     p.ClientName,
		PaymentType:    string(p.Payment.Type),
		Amount:         money.Format(p.Payment.AmountCents),
		Remaining:      money.Format(p.RemainingCents),
		Currency:       p.Payment.Currency,
		Status:         string(p.Payment.Status),
		Paid:           p.Payment.Paid,
	}
	if !p.Payment.Paid {
		res.CheckoutURL = p.Payment.CheckoutURL
	}
	return res
}

type WebhookResponse struct {
	Status string `json:"status"`
}
