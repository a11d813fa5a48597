package entities

import "time"

type PaymentType string

const (
	PaymentTypeTotal       PaymentType = "total"
	PaymentTypeDeposit     PaymentType = "deposit"
	PaymentTypeInstallment PaymentType = "installment"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeTotal || t == PaymentTypeDeposit || t == PaymentTypeInstallment
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusFailed:  {PaymentStatusPending, PaymentStatusPaid},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return allowed(paymentTransitions, s, next)
}

// Payment is a payable link opened against a signed document.
//
// Storage model (DynamoDB):
//   - PK: id (the payment token, also the idempotency key)
//   - GSI1 (document_id-index): document_id
//
// ChargeKey identifies the logical charge; concurrent requests for the same
// charge resolve to the same payment id.
type Payment struct {
	ID                string        `json:"id"`
	DocumentID        string        `json:"document_id"`
	OwnerID           string        `json:"owner_id"`
	Type              PaymentType   `json:"payment_type"`
	InstallmentID     string        `json:"installment_id,omitempty"`
	AmountCents       int64         `json:"amount_cents"`
	Currency          string        `json:"currency"`
	ChargeKey         string        `json:"-"`
	ExternalSessionID string        `json:"external_session_id"`
	ExternalIntentID  string        `json:"external_intent_id,omitempty"`
	CheckoutURL       string        `json:"checkout_url"`
	Status            PaymentStatus `json:"status"`
	Paid              bool          `json:"paid"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
}

// PaidCents sums the amounts of settled payments.
func PaidCents(payments []Payment) int64 {
	var sum int64
	for _, p := range payments {
		if p.Status == PaymentStatusPaid {
			sum += p.AmountCents
		}
	}
	return sum
}

// IsOpen reports a link the payer can still complete.
func (p Payment) IsOpen() bool {
	return p.Status == PaymentStatusPending && p.CheckoutURL != ""
}

// OpenCents sums the amounts of open links, skipping the payment named by
// excludeID.
func OpenCents(payments []Payment, excludeID string) int64 {
	var sum int64
	for _, p := range payments {
		if p.IsOpen() && p.ID != excludeID {
			sum += p.AmountCents
		}
	}
	return sum
}

// PaymentLinkTTL bounds how long a payment token stays resolvable.
const PaymentLinkTTL = 30 * 24 * time.Hour
