package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"doctrust/internal/adapter/persistence/memory"
	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"
	mock_interfaces "doctrust/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOwner   = "owner-1"
	testBaseURL = "https://app.example.com"
	testOTPCode = "123456"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// pipeline wires every use case over one in-memory store with a shared clock.
// The mailer records what it is asked to send; the gateway only accepts the
// calls a test expects.
type pipeline struct {
	store   *memory.Store
	clock   *testClock
	gateway *mock_interfaces.MockIPaymentGateway

	mu      sync.Mutex
	mails   []interfaces.Email
	mailErr error

	documents    *DocumentUseCase
	tokens       *TokenUseCase
	audit        *AuditUseCase
	otp          *OTPUseCase
	signatures   *SignatureUseCase
	certificates *CertificateUseCase
	payments     *PaymentUseCase
	installments *InstallmentUseCase
}

func newPipeline(t *testing.T, baseURLs ...BaseURLStrategy) *pipeline {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memory.NewStore()
	clock := newTestClock()
	p := &pipeline{store: store, clock: clock, gateway: mock_interfaces.NewMockIPaymentGateway(ctrl)}

	mailer := mock_interfaces.NewMockIMailer(ctrl)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.Email) error {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.mailErr != nil {
			return p.mailErr
		}
		p.mails = append(p.mails, msg)
		return nil
	}).AnyTimes()

	if len(baseURLs) == 0 {
		baseURLs = []BaseURLStrategy{AccountBaseURL(store.Accounts()), StaticBaseURL(testBaseURL)}
	}
	urls := NewPublicURLBuilder(baseURLs...)

	p.documents = NewDocumentUseCase(store.Documents())
	p.documents.now = clock.Now
	p.tokens = NewTokenUseCase(store.Tokens())
	p.tokens.now = clock.Now
	p.audit = NewAuditUseCase(store.Events(), store.Documents())
	p.audit.now = clock.Now
	p.certificates = NewCertificateUseCase(store.Documents(), p.audit)
	p.certificates.now = clock.Now
	p.otp = NewOTPUseCase(store.Challenges(), store.Sessions(), p.tokens, p.audit, mailer)
	p.otp.now = clock.Now
	p.otp.hashCost = bcrypt.MinCost
	p.otp.generate = func() (string, error) { return testOTPCode, nil }
	p.signatures = NewSignatureUseCase(store.Documents(), store.Sessions(), p.tokens, urls, p.audit, p.certificates, mailer)
	p.signatures.now = clock.Now
	p.payments = NewPaymentUseCase(store.Payments(), store.Documents(), store.Installments(), p.tokens, urls, p.gateway, PaymentOptions{GatewayTimeout: time.Second})
	p.payments.now = clock.Now
	p.installments = NewInstallmentUseCase(store.Installments(), store.Documents(), p.payments)
	p.installments.now = clock.Now
	return p
}

func (p *pipeline) sentMails() []interfaces.Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interfaces.Email, len(p.mails))
	copy(out, p.mails)
	return out
}

func (p *pipeline) failMail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mailErr = err
}

func (p *pipeline) newDocument(t *testing.T, kind entities.DocumentKind, amountCents int64) entities.Document {
	t.Helper()
	doc, err := p.documents.Create(context.Background(), testOwner, CreateDocumentCommand{
		Kind:               kind,
		Number:             "DOC-2024-001",
		ClientName:         "Ada Lovelace",
		ClientEmail:        "ada@example.com",
		AmountCents:        amountCents,
		AmountExclTaxCents: amountCents * 100 / 120,
		Currency:           "EUR",
	})
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return doc
}

func (p *pipeline) issue(t *testing.T, doc entities.Document) IssuedSession {
	t.Helper()
	issued, err := p.signatures.IssueSession(context.Background(), testOwner, doc.ID, "", "")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return issued
}

func (p *pipeline) verify(t *testing.T, token string) {
	t.Helper()
	ctx := context.Background()
	if _, err := p.otp.Send(ctx, token, "", "203.0.113.7", "test-agent"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if err := p.otp.Verify(ctx, token, testOTPCode, "203.0.113.7", "test-agent"); err != nil {
		t.Fatalf("verify otp: %v", err)
	}
}

// sign runs a document through issue, OTP and completion.
func (p *pipeline) sign(t *testing.T, doc entities.Document) CompletedSignature {
	t.Helper()
	issued := p.issue(t, doc)
	p.verify(t, issued.Session.Token)
	done, err := p.signatures.Complete(context.Background(), CompleteSignatureCommand{
		Token:     issued.Session.Token,
		Payload:   "data:image/png;base64,iVBORw0KGgo=",
		IPAddress: "203.0.113.7",
		UserAgent: "test-agent",
	})
	if err != nil {
		t.Fatalf("complete signature: %v", err)
	}
	return done
}

func (p *pipeline) reload(t *testing.T, id string) entities.Document {
	t.Helper()
	doc, err := p.store.Documents().GetByID(context.Background(), id)
	if err != nil || doc.ID == "" {
		t.Fatalf("reload document %s: %v", id, err)
	}
	return doc
}

// expectCheckout lets the gateway open n checkout sessions.
func (p *pipeline) expectCheckout(n int) *gomock.Call {
	return p.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
			return interfaces.CheckoutSession{
				URL:       "https://checkout.example.com/" + req.Reference,
				SessionID: "pref-" + req.Reference,
			}, nil
		},
	).Times(n)
}

// approve makes the gateway report an approved charge for the payment.
func (p *pipeline) approve(t *testing.T, pay entities.Payment) entities.Payment {
	t.Helper()
	providerID := "mp-" + pay.ID
	p.gateway.EXPECT().GetPayment(gomock.Any(), providerID).Return(interfaces.ProviderPayment{
		ID:          providerID,
		Status:      interfaces.ProviderStatusApproved,
		Reference:   pay.ID,
		AmountCents: pay.AmountCents,
		Currency:    pay.Currency,
	}, nil)
	confirmed, err := p.payments.ConfirmFromProvider(context.Background(), providerID)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	return confirmed
}

func eventTypes(events []entities.SignatureEvent) []entities.SignatureEventType {
	out := make([]entities.SignatureEventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}
