package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"doctrust/internal/domain/money"

	"github.com/shopspring/decimal"
)

// PaymentLinkRequest asks for a payable link. Amount is read for deposits only.
type PaymentLinkRequest struct {
	PaymentType   string           `json:"payment_type" binding:"required" example:"deposit"`
	Amount        *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"300.00"`
	InstallmentID string           `json:"installment_id,omitempty"`
}

// ResolveAmountCents is zero when no amount was sent.
func (r PaymentLinkRequest) ResolveAmountCents() (int64, error) {
	if r.Amount == nil {
		return 0, nil
	}
	cents, err := money.ToCents(*r.Amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func (r PaymentLinkRequest) ResolveType() string {
	return strings.ToLower(strings.TrimSpace(r.PaymentType))
}

// PaymentNotification is the body Mercado Pago posts to the webhook.
//
// Only the topic and the payment id matter; the payment itself is always
// re-read from the processor.
type PaymentNotification struct {
	Type   string           `json:"type"`
	Action string           `json:"action"`
	Data   NotificationData `json:"data"`
}

type NotificationData struct {
	ID NotificationID `json:"id"`
}

// NotificationID accepts the id both as a JSON string and as a number.
type NotificationID string

func (n *NotificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NotificationID(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NotificationID(num.String())
	return nil
}

// IsPayment reports whether the notification concerns a payment.
// An empty type is accepted, the legacy IPN format only sends the id.
func (p PaymentNotification) IsPayment() bool {
	t := strings.ToLower(strings.TrimSpace(p.Type))
	return t == "" || t == "payment"
}
