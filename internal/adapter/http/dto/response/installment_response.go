package response

import (
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase"
)

type InstallmentResponse struct {
	ID                string     `json:"id"`
	InvoiceID         string     `json:"invoice_id"`
	InstallmentNumber int        `json:"installment_number"`
	TotalInstallments int        `json:"total_installments"`
	Amount            string     `json:"amount" example:"333.33"`
	Currency          string     `json:"currency"`
	DueDate           time.Time  `json:"due_date"`
	Status            string     `json:"status"`
	PaymentLink       string     `json:"payment_link,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                i.ID,
		InvoiceID:         i.InvoiceID,
		InstallmentNumber: i.Number,
		TotalInstallments: i.Total,
		Amount:            money.Format(i.AmountCents),
		Currency:          i.Currency,
		DueDate:           i.DueDate,
		Status:            string(i.Status),
		PaymentLink:       i.PaymentLink,
		PaidAt:            i.PaidAt,
	}
}

func FromInstallments(items []entities.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInstallment(i))
	}
	return out
}

type InstallmentLinkResponse struct {
	Installment InstallmentResponse `json:"installment"`
	Payment     PaymentResponse     `json:"payment"`
	PaymentURL  string              `json:"payment_url"`
}

func FromInstallmentLink(l usecase.InstallmentLink) InstallmentLinkResponse {
	return InstallmentLinkResponse{
		Installment: FromInstallment(l.Installment),
		Payment:     FromPayment(l.Payment),
		PaymentURL:  l.URL,
	}
}
