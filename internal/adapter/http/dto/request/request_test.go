package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateDocumentRequest_ResolveAmounts(t *testing.T) {
	t.Run("string and number amounts", func(t *testing.T) {
		var r CreateDocumentRequest
		if err := json.Unmarshal([]byte(`{"amount":"1000.00","amount_excl_tax":833.33}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		total, excl, err := r.ResolveAmounts()
		if err != nil || total != 100000 || excl != 83333 {
			t.Fatalf("unexpected amounts %d %d %v", total, excl, err)
		}
	})

	t.Run("excl tax defaults to the total", func(t *testing.T) {
		r := CreateDocumentRequest{Amount: decimal.RequireFromString("12.5")}
		total, excl, err := r.ResolveAmounts()
		if err != nil || total != 1250 || excl != 1250 {
			t.Fatalf("unexpected amounts %d %d %v", total, excl, err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		over := decimal.RequireFromString("20")
		cases := map[string]CreateDocumentRequest{
			"zero":           {},
			"negative":       {Amount: decimal.RequireFromString("-1")},
			"sub cent":       {Amount: decimal.RequireFromString("1.005")},
			"excl above ttc": {Amount: decimal.RequireFromString("10"), AmountExclTax: &over},
		}
		for name, r := range cases {
			if _, _, err := r.ResolveAmounts(); !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("%s: expected ErrInvalidAmount, got %v", name, err)
			}
		}
	})

	if got := (CreateDocumentRequest{Kind: " Invoice "}).ResolveKind(); got != "invoice" {
		t.Fatalf("expected invoice, got %q", got)
	}
}

func TestPaymentLinkRequest_ResolveAmountCents(t *testing.T) {
	if cents, err := (PaymentLinkRequest{}).ResolveAmountCents(); err != nil || cents != 0 {
		t.Fatalf("expected 0 without amount, got %d %v", cents, err)
	}
	amount := decimal.RequireFromString("300.10")
	if cents, err := (PaymentLinkRequest{Amount: &amount}).ResolveAmountCents(); err != nil || cents != 30010 {
		t.Fatalf("expected 30010, got %d %v", cents, err)
	}
	bad := decimal.RequireFromString("0.001")
	if _, err := (PaymentLinkRequest{Amount: &bad}).ResolveAmountCents(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if got := (PaymentLinkRequest{PaymentType: "TOTAL"}).ResolveType(); got != "total" {
		t.Fatalf("expected total, got %q", got)
	}
}

func TestPaymentNotification(t *testing.T) {
	cases := map[string]string{
		`{"type":"payment","data":{"id":"123"}}`: "123",
		`{"type":"payment","data":{"id":456}}`:   "456",
		`{"data":{"id":null}}`:                   "",
	}
	for body, want := range cases {
		var n PaymentNotification
		if err := json.Unmarshal([]byte(body), &n); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if string(n.Data.ID) != want || !n.IsPayment() {
			t.Fatalf("%s: got id %q", body, n.Data.ID)
		}
	}

	var other PaymentNotification
	if err := json.Unmarshal([]byte(`{"type":"merchant_order","data":{"id":"1"}}`), &other); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if other.IsPayment() {
		t.Fatalf("merchant orders are not payments")
	}
	if err := json.Unmarshal([]byte(`{"data":{"id":true}}`), &other); err == nil {
		t.Fatalf("expected an error for a boolean id")
	}
}
