package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/adapter/persistence/memory"
	"doctrust/internal/infrastructure/config"
	"doctrust/internal/infrastructure/payments"
	"doctrust/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []interfaces.Email
}

func (m *captureMailer) Send(_ context.Context, msg interfaces.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

var otpPattern = regexp.MustCompile(`\b\d{6}\b`)

func (m *captureMailer) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatalf("no email sent")
	}
	code := otpPattern.FindString(m.sent[len(m.sent)-1].Body)
	if code == "" {
		t.Fatalf("no code in %q", m.sent[len(m.sent)-1].Body)
	}
	return code
}

type testServer struct {
	router *gin.Engine
	mailer *captureMailer
	bearer string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		JWTSecret:    "test-secret",
		AppPublicURL: "https://app.example.com",
		OTPHashCost:  4,
	}
	gateway, err := payments.NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	mailer := &captureMailer{}
	deps := NewDependencies(cfg, MemoryRepositories(memory.NewStore()), mailer, gateway)
	tok, err := middleware.SignOwnerToken([]byte(cfg.JWTSecret), "owner-1", time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return &testServer{router: NewRouter(cfg, deps), mailer: mailer, bearer: "Bearer " + tok}
}

func (s *testServer) do(t *testing.T, method, path, body string, owner bool, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if owner {
		req.Header.Set("Authorization", s.bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func lastSegment(u string) string {
	return u[strings.LastIndex(u, "/")+1:]
}

func TestRouter_Ping(t *testing.T) {
	s := newTestServer(t)
	var body map[string]string
	if code := s.do(t, http.MethodGet, "/v1/ping", "", false, &body); code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping %d %v", code, body)
	}
}

func TestRouter_OwnerRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	if code := s.do(t, http.MethodGet, "/v1/documents/doc-1", "", false, nil); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if code := s.do(t, http.MethodGet, "/v1/public/signatures/unknown", "", false, nil); code != http.StatusNotFound {
		t.Fatalf("public routes must not require a token, got %d", code)
	}
}

func TestRouter_SignAndPayInInstallments(t *testing.T) {
	s := newTestServer(t)

	var doc map[string]any
	code := s.do(t, http.MethodPost, "/v1/documents",
		`{"kind":"invoice","number":"F-2024-001","client_name":"Ada","client_email":"ada@example.com","amount":"1000.00","currency":"EUR"}`, true, &doc)
	if code != http.StatusCreated {
		t.Fatalf("create document: %d %v", code, doc)
	}
	docID := doc["id"].(string)

	var session map[string]any
	if code := s.do(t, http.MethodPost, "/v1/documents/"+docID+"/signature-sessions", `{"signer_email":"ada@example.com"}`, true, &session); code != http.StatusCreated {
		t.Fatalf("issue session: %d %v", code, session)
	}
	signURL := session["sign_url"].(string)
	if !strings.HasPrefix(signURL, "https://app.example.com/sign/") {
		t.Fatalf("unexpected sign url %q", signURL)
	}
	token := lastSegment(signURL)

	if code := s.do(t, http.MethodGet, "/v1/public/signatures/"+token, "", false, nil); code != http.StatusOK {
		t.Fatalf("open: %d", code)
	}
	if code := s.do(t, http.MethodPost, "/v1/public/signatures/"+token+"/complete", `{"signature_data":"x","signer_name":"Ada"}`, false, nil); code != http.StatusForbidden {
		t.Fatalf("signing before the code is verified must fail, got %d", code)
	}
	if code := s.do(t, http.MethodPost, "/v1/public/signatures/"+token+"/otp", `{"email":"ADA@example.com"}`, false, nil); code != http.StatusOK {
		t.Fatalf("send otp: %d", code)
	}
	otp := s.mailer.lastCode(t)
	if code := s.do(t, http.MethodPost, "/v1/public/signatures/"+token+"/otp/verify", `{"code":"`+otp+`"}`, false, nil); code != http.StatusOK {
		t.Fatalf("verify otp: %d", code)
	}
	var signed map[string]any
	if code := s.do(t, http.MethodPost, "/v1/public/signatures/"+token+"/complete", `{"signature_data":"data:image/png;base64,AAAA","signer_name":"Ada"}`, false, &signed); code != http.StatusOK {
		t.Fatalf("complete: %d %v", code, signed)
	}
	if signed["document_status"] != "signed" || !strings.HasPrefix(signed["certificate_number"].(string), "CERT-") {
		t.Fatalf("unexpected completion %v", signed)
	}

	var cert map[string]any
	if code := s.do(t, http.MethodGet, "/v1/documents/"+docID+"/certificate", "", true, &cert); code != http.StatusOK {
		t.Fatalf("certificate: %d %v", code, cert)
	}
	if cert["certificate_number"] != signed["certificate_number"] {
		t.Fatalf("certificate number must be stable, got %v vs %v", cert["certificate_number"], signed["certificate_number"])
	}

	var events []map[string]any
	s.do(t, http.MethodGet, "/v1/documents/"+docID+"/events", "", true, &events)
	var types []string
	for _, e := range events {
		types = append(types, e["event_type"].(string))
	}
	want := "viewed,otp_sent,otp_verified,signed,certificate_generated,certificate_generated"
	if got := strings.Join(types, ","); got != want {
		t.Fatalf("unexpected audit trail %s, want %s", got, want)
	}

	var schedule []map[string]any
	if code := s.do(t, http.MethodPost, "/v1/invoices/"+docID+"/installments", `{"installments":3}`, true, &schedule); code != http.StatusCreated {
		t.Fatalf("schedule: %d %v", code, schedule)
	}
	amounts := []string{schedule[0]["amount"].(string), schedule[1]["amount"].(string), schedule[2]["amount"].(string)}
	if strings.Join(amounts, ",") != "333.33,333.33,333.34" {
		t.Fatalf("unexpected split %v", amounts)
	}

	for _, item := range schedule {
		var link map[string]any
		if code := s.do(t, http.MethodPost, "/v1/installments/"+item["id"].(string)+"/payment-link", "", true, &link); code != http.StatusOK {
			t.Fatalf("send link: %d %v", code, link)
		}
		payToken := lastSegment(link["payment_url"].(string))

		var page map[string]any
		if code := s.do(t, http.MethodGet, "/v1/public/payments/"+payToken, "", false, &page); code != http.StatusOK || page["checkout_url"] == "" {
			t.Fatalf("payment page: %d %v", code, page)
		}
		var ack map[string]any
		if code := s.do(t, http.MethodPost, "/v1/webhooks/payments", `{"type":"payment","data":{"id":"mock-`+payToken+`"}}`, false, &ack); code != http.StatusOK || ack["status"] != "paid" {
			t.Fatalf("webhook: %d %v", code, ack)
		}
		// replay
		if code := s.do(t, http.MethodPost, "/v1/webhooks/payments", `{"type":"payment","data":{"id":"mock-`+payToken+`"}}`, false, nil); code != http.StatusOK {
			t.Fatalf("replayed webhook: %d", code)
		}
	}

	s.do(t, http.MethodGet, "/v1/documents/"+docID, "", true, &doc)
	if doc["status"] != "paid" {
		t.Fatalf("expected the invoice paid, got %v", doc["status"])
	}
	var paymentsList []map[string]any
	s.do(t, http.MethodGet, "/v1/documents/"+docID+"/payments", "", true, &paymentsList)
	if len(paymentsList) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(paymentsList))
	}
}
