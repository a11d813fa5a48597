package entities

import "time"

const (
	InstallmentInterval = 30 * 24 * time.Hour
	MaxInstallments     = 60
)

type InstallmentStatus string

const (
	InstallmentPending    InstallmentStatus = "pending"
	InstallmentProcessing InstallmentStatus = "processing"
	InstallmentPaid       InstallmentStatus = "paid"
	InstallmentOverdue    InstallmentStatus = "overdue"
	InstallmentCancelled  InstallmentStatus = "cancelled"
)

var installmentTransitions = map[InstallmentStatus][]InstallmentStatus{
	InstallmentPending:    {InstallmentProcessing, InstallmentPaid, InstallmentOverdue, InstallmentCancelled},
	InstallmentProcessing: {InstallmentProcessing, InstallmentPending, InstallmentPaid, InstallmentOverdue, InstallmentCancelled},
	InstallmentOverdue:    {InstallmentProcessing, InstallmentPaid, InstallmentCancelled},
}

func (s InstallmentStatus) CanTransitionTo(next InstallmentStatus) bool {
	return allowed(installmentTransitions, s, next)
}

// Installment is one dated, independently payable slice of an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - schedule marker item "schedule#<invoice_id>" lists the ids of a schedule
type Installment struct {
	ID          string            `json:"id"`
	InvoiceID   string            `json:"invoice_id"`
	OwnerID     string            `json:"owner_id"`
	Number      int               `json:"installment_number"`
	Total       int               `json:"total_installments"`
	AmountCents int64             `json:"amount_cents"`
	Currency    string            `json:"currency"`
	DueDate     time.Time         `json:"due_date"`
	Status      InstallmentStatus `json:"status"`
	PaymentID   string            `json:"payment_id,omitempty"`
	PaymentLink string            `json:"payment_link,omitempty"`
	PaidAt      *time.Time        `json:"paid_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// EffectiveStatus reports overdue for unpaid installments past their due date.
func (i Installment) EffectiveStatus(now time.Time) InstallmentStatus {
	if (i.Status == InstallmentPending || i.Status == InstallmentProcessing) && now.After(i.DueDate) {
		return InstallmentOverdue
	}
	return i.Status
}
