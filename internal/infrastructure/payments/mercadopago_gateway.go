package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"doctrust/internal/domain/money"
	"doctrust/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
	ErrMockPaymentNotFound             = errors.New("mock payment not found")
)

const (
	mockPaymentPrefix  = "mock-"
	mockRejectedPrefix = "mock-rejected-"
	mockCheckoutBase   = "https://sandbox.mercadopago.com/checkout/v1/redirect?pref_id="
)

// MercadoPagoGateway opens Checkout Pro preferences and reads payments back
// for confirmation.
//
// In mock mode nothing leaves the process: checkout sessions are remembered
// and "mock-<reference>" payment ids resolve to an approved payment of the
// remembered amount ("mock-rejected-<reference>" to a rejected one).
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool

	mu    sync.Mutex
	mocks map[string]interfaces.CheckoutRequest
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		zap.S().Infow("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, mocks: map[string]interfaces.CheckoutRequest{}}, nil
	}
	if accessToken == "" {
		zap.S().Warnw("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.S().Errorw("[payment][gateway] failed creating sdk config", "error", err)
		return nil, err
	}
	zap.S().Infow("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		g.mocks[req.Reference] = req
		g.mu.Unlock()
		zap.S().Infow("[payment][gateway] mock checkout created", "reference", req.Reference, "amount", money.Format(req.AmountCents))
		return interfaces.CheckoutSession{
			URL:       mockCheckoutBase + "mock-pref-" + req.Reference,
			SessionID: "mock-pref-" + req.Reference,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	pref := preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.Reference,
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  money.Float(req.AmountCents),
			CurrencyID: req.Currency,
		}},
		ExternalReference: req.Reference,
		Metadata:          req.Metadata,
		NotificationURL:   req.NotificationURL,
	}
	if req.PayerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	if req.ReturnURL != "" {
		pref.BackURLs = &preference.BackURLsRequest{
			Success: req.ReturnURL,
			Pending: req.ReturnURL,
			Failure: req.ReturnURL,
		}
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		zap.S().Errorw("[payment][gateway] preference create failed", "reference", req.Reference, "error", err)
		return interfaces.CheckoutSession{}, err
	}
	zap.S().Infow("[payment][gateway] preference created", "reference", req.Reference, "preference_id", resp.ID)
	return interfaces.CheckoutSession{URL: resp.InitPoint, SessionID: resp.ID}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(providerPaymentID)
	}
	if g == nil || g.payments == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		zap.S().Errorw("[payment][gateway] payment get failed", "provider_payment_id", providerPaymentID, "error", err)
		return interfaces.ProviderPayment{}, err
	}
	zap.S().Infow("[payment][gateway] payment fetched", "provider_payment_id", resp.ID, "status", resp.Status)
	return interfaces.ProviderPayment{
		ID:          strconv.Itoa(resp.ID),
		Status:      resp.Status,
		Reference:   resp.ExternalReference,
		AmountCents: money.FromFloat(resp.TransactionAmount),
		Currency:    resp.CurrencyID,
	}, nil
}

func (g *MercadoPagoGateway) mockPayment(providerPaymentID string) (interfaces.ProviderPayment, error) {
	status := interfaces.ProviderStatusApproved
	ref := strings.TrimPrefix(providerPaymentID, mockPaymentPrefix)
	if strings.HasPrefix(providerPaymentID, mockRejectedPrefix) {
		status = interfaces.ProviderStatusRejected
		ref = strings.TrimPrefix(providerPaymentID, mockRejectedPrefix)
	}

	g.mu.Lock()
	req, ok := g.mocks[ref]
	g.mu.Unlock()
	if !ok {
		return interfaces.ProviderPayment{}, ErrMockPaymentNotFound
	}
	return interfaces.ProviderPayment{
		ID:          providerPaymentID,
		Status:      status,
		Reference:   req.Reference,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
	}, nil
}
