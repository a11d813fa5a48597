package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"doctrust/internal/usecase/interfaces"
)

func TestMockGatewayRoundTrip(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	session, err := g.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{Reference: "tok-1", AmountCents: 12345, Currency: "EUR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.URL == "" || session.SessionID == "" {
		t.Fatalf("expected a checkout session, got %+v", session)
	}

	t.Run("approved", func(t *testing.T) {
		p, err := g.GetPayment(ctx, "mock-tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != interfaces.ProviderStatusApproved || p.Reference != "tok-1" || p.AmountCents != 12345 {
			t.Fatalf("unexpected payment %+v", p)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		p, err := g.GetPayment(ctx, "mock-rejected-tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != interfaces.ProviderStatusRejected {
			t.Fatalf("status = %q", p.Status)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := g.GetPayment(ctx, "mock-nope"); !errors.Is(err, ErrMockPaymentNotFound) {
			t.Fatalf("expected ErrMockPaymentNotFound, got %v", err)
		}
	})
}

func TestNewGatewayRequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "s3cret"
	sign := func(manifest string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(manifest))
		return hex.EncodeToString(mac.Sum(nil))
	}
	good := "ts=1704908010,v1=" + sign("id:123456;request-id:req-1;ts:1704908010;")

	if err := VerifyWebhookSignature(secret, good, "req-1", "123456"); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
	if err := VerifyWebhookSignature(secret, good, "req-2", "123456"); !errors.Is(err, ErrInvalidWebhookSignature) {
		t.Fatalf("expected invalid signature for another request id")
	}
	if err := VerifyWebhookSignature(secret, "v1=abc", "req-1", "123456"); !errors.Is(err, ErrInvalidWebhookSignature) {
		t.Fatalf("expected invalid signature without ts")
	}
	if err := VerifyWebhookSignature("", "", "", ""); err != nil {
		t.Fatalf("no secret configured should accept, got %v", err)
	}
}
