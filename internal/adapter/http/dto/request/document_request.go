package request

import (
	"errors"
	"strings"

	"doctrust/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// CreateDocumentRequest registers a quote or an invoice.
//
// Amounts are decimals in the document currency, either JSON numbers or
// strings ("1000.00"). amount_excl_tax defaults to amount when omitted.
type CreateDocumentRequest struct {
	Kind          string           `json:"kind" binding:"required" example:"invoice"`
	Number        string           `json:"number" binding:"required" example:"F-2024-001"`
	ClientName    string           `json:"client_name" binding:"required"`
	ClientEmail   string           `json:"client_email" binding:"required"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"1000.00"`
	AmountExclTax *decimal.Decimal `json:"amount_excl_tax,omitempty" swaggertype:"string" example:"833.33"`
	Currency      string           `json:"currency" example:"EUR"`
}

// ResolveAmounts returns the tax-included and pre-tax totals in cents.
func (r CreateDocumentRequest) ResolveAmounts() (int64, int64, error) {
	total, err := money.ToCents(r.Amount)
	if err != nil || total <= 0 {
		return 0, 0, ErrInvalidAmount
	}
	if r.AmountExclTax == nil {
		return total, total, nil
	}
	excl, err := money.ToCents(*r.AmountExclTax)
	if err != nil || excl > total {
		return 0, 0, ErrInvalidAmount
	}
	return total, excl, nil
}

func (r CreateDocumentRequest) ResolveKind() string {
	return strings.ToLower(strings.TrimSpace(r.Kind))
}
