package interfaces

import "context"

// CheckoutRequest describes a hosted checkout to open at the processor.
//
// Reference is the local payment token; the processor echoes it back on
// confirmation (external_reference).
type CheckoutRequest struct {
	Reference       string
	Title           string
	AmountCents     int64
	Currency        string
	PayerEmail      string
	Metadata        map[string]any
	ReturnURL       string
	NotificationURL string
}

type CheckoutSession struct {
	URL       string
	SessionID string
}

// ProviderPayment is the processor view of a settled or failed charge.
type ProviderPayment struct {
	ID          string
	Status      string
	Reference   string
	AmountCents int64
	Currency    string
}

const (
	ProviderStatusApproved = "approved"
	ProviderStatusRejected = "rejected"
	ProviderStatusCanceled = "cancelled"
	ProviderStatusRefunded = "refunded"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}
