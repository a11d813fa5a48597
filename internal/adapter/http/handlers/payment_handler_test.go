package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctrust/internal/adapter/http/handlers/mocks"
	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentHandlerTest(t *testing.T, secret string) (*mocks.MockIPaymentUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, secret)
	r := ownerRouter()
	r.POST("/v1/documents/:id/payment-links", h.CreatePaymentLink)
	r.GET("/v1/documents/:id/payments", h.ListPayments)
	r.GET("/v1/public/payments/:token", h.GetPublicPayment)
	r.POST("/v1/webhooks/payments", h.PaymentWebhook)
	return uc, r
}

func TestPaymentHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	link := usecase.PaymentLink{
		Payment: entities.Payment{ID: "tok-1", DocumentID: "doc-1", Type: entities.PaymentTypeDeposit, AmountCents: 30000, Status: entities.PaymentStatusPending},
		URL:     "https://app.example.com/pay/tok-1",
	}

	t.Run("missing type", func(t *testing.T) {
		_, r := newPaymentHandlerTest(t, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents/doc-1/payment-links", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deposit with key", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		want := usecase.PaymentLinkCommand{
			OwnerID:        testOwner,
			DocumentID:     "doc-1",
			Type:           entities.PaymentTypeDeposit,
			AmountCents:    30000,
			IdempotencyKey: "retry-1",
		}
		uc.EXPECT().CreatePaymentLink(gomock.Any(), want).Return(link, nil)

		req := jsonRequest(http.MethodPost, "/v1/documents/doc-1/payment-links", `{"payment_type":"deposit","amount":"300.00"}`)
		req.Header.Set("Idempotency-Key", " retry-1 ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["payment_url"] != link.URL || res["amount"] != "300.00" {
			t.Fatalf("unexpected body %v", res)
		}
	})

	t.Run("repeat returns 200", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		reused := link
		reused.Reused = true
		uc.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(reused, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents/doc-1/payment-links", `{"payment_type":"total"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
			body string
		}{
			{usecase.ErrDocumentNotSigned, http.StatusConflict, "DOCUMENT_NOT_SIGNED"},
			{usecase.ErrAmountExceedsRemaining, http.StatusBadRequest, "AMOUNT_EXCEEDS_REMAINING"},
			{usecase.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
			{usecase.ErrDocumentSettled, http.StatusConflict, "DOCUMENT_SETTLED"},
			{usecase.ErrBalanceCommitted, http.StatusConflict, "BALANCE_COMMITTED"},
			{fmt.Errorf("%w: timeout", usecase.ErrExternalProcessor), http.StatusBadGateway, "PAYMENT_PROVIDER_ERROR"},
		}
		for _, tc := range cases {
			uc, r := newPaymentHandlerTest(t, "")
			uc.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(usecase.PaymentLink{}, tc.err)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents/doc-1/payment-links", `{"payment_type":"deposit","amount":600}`))
			if w.Code != tc.code || decodeError(t, w).Code != tc.body {
				t.Fatalf("for err %v expected %d %s, got %d %s", tc.err, tc.code, tc.body, w.Code, w.Body.String())
			}
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc, r := newPaymentHandlerTest(t, "")
	uc.EXPECT().ListByDocument(gomock.Any(), testOwner, "doc-1").Return([]entities.Payment{{ID: "tok-1", AmountCents: 100}}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/payments", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 1 || res[0]["amount"] != "1.00" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if _, ok := res[0]["id"]; ok {
		t.Fatalf("payment tokens must not be listed")
	}
}

func TestPaymentHandler_GetPublicPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired link", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().GetPublicPayment(gomock.Any(), "tok").Return(usecase.PaymentPage{}, usecase.ErrTokenExpired)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/payments/tok", nil))
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().GetPublicPayment(gomock.Any(), "tok").Return(usecase.PaymentPage{
			Payment:        entities.Payment{AmountCents: 30000, CheckoutURL: "https://mp.example.com/checkout"},
			RemainingCents: 100000,
		}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/payments/tok", nil))
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if w.Code != http.StatusOK || res["checkout_url"] != "https://mp.example.com/checkout" || res["remaining"] != "1000.00" {
			t.Fatalf("unexpected response %d %v", w.Code, res)
		}
	})
}

func signWebhook(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("id:" + dataID + ";request-id:" + requestID + ";ts:" + ts + ";"))
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentHandler_PaymentWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signed notification", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "whsec")
		uc.EXPECT().ConfirmFromProvider(gomock.Any(), "123").Return(entities.Payment{Status: entities.PaymentStatusPaid}, nil)

		req := jsonRequest(http.MethodPost, "/v1/webhooks/payments?data.id=123&type=payment", `{"type":"payment","data":{"id":"123"}}`)
		req.Header.Set("x-request-id", "req-1")
		req.Header.Set("x-signature", signWebhook("whsec", "123", "req-1", "1700000000"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != `{"status":"paid"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		_, r := newPaymentHandlerTest(t, "whsec")
		req := jsonRequest(http.MethodPost, "/v1/webhooks/payments?data.id=123&type=payment", `{}`)
		req.Header.Set("x-request-id", "req-1")
		req.Header.Set("x-signature", signWebhook("other", "123", "req-1", "1700000000"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("numeric id in body without secret", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().ConfirmFromProvider(gomock.Any(), "987").Return(entities.Payment{Status: entities.PaymentStatusFailed}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/webhooks/payments", `{"type":"payment","data":{"id":987}}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("other topics are acknowledged", func(t *testing.T) {
		_, r := newPaymentHandlerTest(t, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/webhooks/payments?topic=merchant_order&id=5", `{}`))
		if w.Code != http.StatusOK || w.Body.String() != `{"status":"ignored"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown reference is acknowledged", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().ConfirmFromProvider(gomock.Any(), "1").Return(entities.Payment{}, usecase.ErrPaymentNotFound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/webhooks/payments", `{"data":{"id":"1"}}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 so the processor stops retrying, got %d", w.Code)
		}
	})

	t.Run("provider outage asks for a retry", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().ConfirmFromProvider(gomock.Any(), "1").Return(entities.Payment{}, fmt.Errorf("%w: timeout", usecase.ErrExternalProcessor))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/webhooks/payments", `{"data":{"id":"1"}}`))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("storage failure asks for a retry", func(t *testing.T) {
		uc, r := newPaymentHandlerTest(t, "")
		uc.EXPECT().ConfirmFromProvider(gomock.Any(), "1").Return(entities.Payment{}, errors.New("db"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/webhooks/payments", `{"data":{"id":"1"}}`))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrTokenNotFound, http.StatusNotFound},
		{usecase.ErrPaymentAlreadyPaid, http.StatusConflict},
		{usecase.ErrAmountMismatch, http.StatusConflict},
		{usecase.ErrInvalidPaymentType, http.StatusBadRequest},
		{usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrInstallmentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapPaymentError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
