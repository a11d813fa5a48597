package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctrust/internal/adapter/http/handlers/mocks"
	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInstallmentHandlerTest(t *testing.T) (*mocks.MockIInstallmentUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInstallmentUseCase(ctrl)
	h := NewInstallmentHandler(uc)
	r := ownerRouter()
	r.POST("/v1/invoices/:id/installments", h.ScheduleInstallments)
	r.GET("/v1/invoices/:id/installments", h.ListInstallments)
	r.POST("/v1/installments/:id/payment-link", h.SendInstallmentLink)
	return uc, r
}

func TestInstallmentHandler_ScheduleInstallments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing count", func(t *testing.T) {
		_, r := newInstallmentHandlerTest(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/invoices/inv-1/installments", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("count out of range", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		uc.EXPECT().Schedule(gomock.Any(), testOwner, "inv-1", 99, gomock.Nil()).Return(nil, usecase.ErrInvalidInstallmentCount)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/invoices/inv-1/installments", `{"installments":99}`))
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_INSTALLMENT_COUNT" {
			t.Fatalf("expected INVALID_INSTALLMENT_COUNT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("quote", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		uc.EXPECT().Schedule(gomock.Any(), testOwner, "q-1", 3, gomock.Any()).Return(nil, usecase.ErrNotAnInvoice)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/invoices/q-1/installments", `{"installments":3}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with start date", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Schedule(gomock.Any(), testOwner, "inv-1", 3, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ int, base *time.Time) ([]entities.Installment, error) {
				if base == nil || !base.Equal(start) {
					t.Fatalf("expected start date %v, got %v", start, base)
				}
				return []entities.Installment{
					{ID: "i-1", Number: 1, Total: 3, AmountCents: 33333},
					{ID: "i-2", Number: 2, Total: 3, AmountCents: 33333},
					{ID: "i-3", Number: 3, Total: 3, AmountCents: 33334},
				}, nil
			})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/invoices/inv-1/installments", `{"installments":3,"start_date":"2024-01-15T00:00:00Z"}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 3 || res[2]["amount"] != "333.34" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestInstallmentHandler_ListInstallments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc, r := newInstallmentHandlerTest(t)
	uc.EXPECT().List(gomock.Any(), testOwner, "inv-1").Return([]entities.Installment{{ID: "i-1", Status: entities.InstallmentOverdue}}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/installments", nil))
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if w.Code != http.StatusOK || len(res) != 1 || res[0]["status"] != "overdue" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestInstallmentHandler_SendInstallmentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		uc.EXPECT().SendLink(gomock.Any(), testOwner, "i-1").Return(usecase.InstallmentLink{}, usecase.ErrInstallmentPaid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/installments/i-1/payment-link", nil))
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "INSTALLMENT_PAID" {
			t.Fatalf("expected INSTALLMENT_PAID, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unsigned invoice", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		uc.EXPECT().SendLink(gomock.Any(), testOwner, "i-1").Return(usecase.InstallmentLink{}, usecase.ErrDocumentNotSigned)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/installments/i-1/payment-link", nil))
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "DOCUMENT_NOT_SIGNED" {
			t.Fatalf("expected DOCUMENT_NOT_SIGNED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newInstallmentHandlerTest(t)
		uc.EXPECT().SendLink(gomock.Any(), testOwner, "i-1").Return(usecase.InstallmentLink{
			Installment: entities.Installment{ID: "i-1", Status: entities.InstallmentProcessing, PaymentLink: "https://app.example.com/pay/tok"},
			Payment:     entities.Payment{ID: "tok", AmountCents: 33333},
			URL:         "https://app.example.com/pay/tok",
		}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/installments/i-1/payment-link", nil))
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if w.Code != http.StatusOK || res["payment_url"] != "https://app.example.com/pay/tok" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
