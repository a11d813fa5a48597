package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctrust/internal/adapter/http/handlers/mocks"
	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase"
	"doctrust/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testOwner = "owner-1"

// ownerRouter stands in for the bearer middleware.
func ownerRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.SetOwnerID(testOwner))
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type documentMocks struct {
	documents    *mocks.MockIDocumentUseCase
	audit        *mocks.MockIAuditUseCase
	certificates *mocks.MockICertificateUseCase
	router       *gin.Engine
}

func newDocumentHandlerTest(t *testing.T) documentMocks {
	ctrl := gomock.NewController(t)
	m := documentMocks{
		documents:    mocks.NewMockIDocumentUseCase(ctrl),
		audit:        mocks.NewMockIAuditUseCase(ctrl),
		certificates: mocks.NewMockICertificateUseCase(ctrl),
		router:       ownerRouter(),
	}
	h := NewDocumentHandler(m.documents, m.audit, m.certificates)
	m.router.POST("/v1/documents", h.CreateDocument)
	m.router.GET("/v1/documents/:id", h.GetDocument)
	m.router.GET("/v1/documents/:id/events", h.ListEvents)
	m.router.GET("/v1/documents/:id/certificate", h.GetCertificate)
	return m
}

func TestDocumentHandler_CreateDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents", "{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("too precise amount", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		w := httptest.NewRecorder()
		body := `{"kind":"invoice","number":"F-1","client_name":"Ada","client_email":"ada@example.com","amount":"10.001"}`
		m.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents", body))
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_AMOUNT" {
			t.Fatalf("expected INVALID_AMOUNT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		m.documents.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).Return(entities.Document{}, usecase.ErrInvalidDocument)
		w := httptest.NewRecorder()
		body := `{"kind":"memo","number":"F-1","client_name":"Ada","client_email":"ada@example.com","amount":10}`
		m.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents", body))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		want := usecase.CreateDocumentCommand{
			Kind:               entities.DocumentKindInvoice,
			Number:             "F-1",
			ClientName:         "Ada",
			ClientEmail:        "ada@example.com",
			AmountCents:        100000,
			AmountExclTaxCents: 83333,
			Currency:           "EUR",
		}
		m.documents.EXPECT().Create(gomock.Any(), testOwner, want).Return(entities.Document{
			ID: "doc-1", Kind: entities.DocumentKindInvoice, AmountCents: 100000, AmountExclTaxCents: 83333, Status: entities.DocumentStatusDraft,
		}, nil)

		w := httptest.NewRecorder()
		body := `{"kind":"Invoice","number":"F-1","client_name":"Ada","client_email":"ada@example.com","amount":"1000.00","amount_excl_tax":"833.33","currency":"EUR"}`
		m.router.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/documents", body))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["amount"] != "1000.00" || res["tax"] != "166.67" || res["status"] != "draft" {
			t.Fatalf("unexpected body %v", res)
		}
	})
}

func TestDocumentHandler_GetDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		m.documents.EXPECT().Get(gomock.Any(), testOwner, "doc-x").Return(entities.Document{}, usecase.ErrDocumentNotFound)
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/doc-x", nil))
		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "DOCUMENT_NOT_FOUND" {
			t.Fatalf("expected DOCUMENT_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		m.documents.EXPECT().Get(gomock.Any(), testOwner, "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newDocumentHandlerTest(t)
	now := time.Now().UTC()
	m.audit.EXPECT().HistoryForOwner(gomock.Any(), testOwner, "doc-1").Return([]entities.SignatureEvent{
		{Seq: 1, Type: entities.EventViewed, CreatedAt: now},
		{Seq: 2, Type: entities.EventOTPSent, CreatedAt: now},
	}, nil)

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/events", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 2 || res[1]["event_type"] != "otp_sent" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestDocumentHandler_GetCertificate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unsigned", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		m.certificates.EXPECT().GenerateForOwner(gomock.Any(), testOwner, "doc-1", gomock.Any(), "cli/1.0").Return(entities.Certificate{}, usecase.ErrNotSigned)
		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/certificate", nil)
		req.Header.Set("User-Agent", "cli/1.0")
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, req)
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "DOCUMENT_NOT_SIGNED" {
			t.Fatalf("expected DOCUMENT_NOT_SIGNED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		m := newDocumentHandlerTest(t)
		m.certificates.EXPECT().GenerateForOwner(gomock.Any(), testOwner, "doc-1", gomock.Any(), gomock.Any()).Return(entities.Certificate{
			Number: "CERT-0011223344556677", DocumentID: "doc-1", AmountCents: 5000,
		}, nil)
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/certificate", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["certificate_number"] != "CERT-0011223344556677" || res["amount"] != "50.00" {
			t.Fatalf("unexpected body %v", res)
		}
	})
}

func TestMapKindError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrDocumentNotFound, http.StatusNotFound},
		{usecase.ErrInvalidDocument, http.StatusBadRequest},
		{usecase.ErrTokenExpired, http.StatusGone},
		{usecase.ErrOTPAlreadyConsumed, http.StatusConflict},
		{usecase.ErrSessionCompleted, http.StatusConflict},
		{usecase.ErrPaymentAlreadyPaid, http.StatusConflict},
		{usecase.ErrStatusConflict, http.StatusConflict},
		{usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapKindError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
	if got := mapKindError(errors.New("boom")).ToHTTPError(); got.Message != "An internal error occurred" {
		t.Fatalf("internal causes must not leak, got %+v", got)
	}
}
