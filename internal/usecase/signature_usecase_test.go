package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"doctrust/internal/domain/entities"
)

func TestSignatureUseCase_IssueSession(t *testing.T) {
	ctx := context.Background()

	t.Run("first issue sends the document", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)

		issued := p.issue(t, doc)
		if issued.Reused || !issued.EmailSent {
			t.Fatalf("unexpected issue result %+v", issued)
		}
		if issued.URL != testBaseURL+"/sign/"+issued.Session.Token {
			t.Fatalf("unexpected url %q", issued.URL)
		}
		s := issued.Session
		if s.Status != entities.SignatureSessionPending || s.SignerEmail != "ada@example.com" || s.SignerName != "Ada Lovelace" {
			t.Fatalf("unexpected session %+v", s)
		}
		if !s.ExpiresAt.Equal(p.clock.Now().Add(entities.SignatureSessionTTL)) {
			t.Fatalf("unexpected expiry %v", s.ExpiresAt)
		}
		if got := p.reload(t, doc.ID).Status; got != entities.DocumentStatusSent {
			t.Fatalf("expected document sent, got %s", got)
		}
		mails := p.sentMails()
		if len(mails) != 1 || !strings.Contains(mails[0].Body, issued.URL) {
			t.Fatalf("expected an invitation with the link, got %+v", mails)
		}
	})

	t.Run("live session is reused for the same signer", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		first := p.issue(t, doc)

		again, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "ADA@example.com", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Reused || again.Session.ID != first.Session.ID || again.URL != first.URL {
			t.Fatalf("expected the live session back, got %+v", again)
		}
	})

	t.Run("concurrent issues share one live session", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)

		const callers = 16
		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = map[string]int{}
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				issued, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "ada@example.com", "")
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				mu.Lock()
				ids[issued.Session.ID]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		if len(ids) != 1 {
			t.Fatalf("expected every caller to get the same session, got %v", ids)
		}
		sessions, _ := p.store.Sessions().ListByDocumentID(ctx, doc.ID)
		if len(sessions) != 1 {
			t.Fatalf("expected one stored session, got %d", len(sessions))
		}
		if len(p.sentMails()) != 1 {
			t.Fatalf("expected a single invitation, got %d", len(p.sentMails()))
		}
	})

	t.Run("another signer gets its own session", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		first := p.issue(t, doc)

		other, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "grace@example.com", "Grace Hopper")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if other.Reused || other.Session.ID == first.Session.ID || other.Session.Token == first.Session.Token {
			t.Fatalf("expected a fresh session, got %+v", other)
		}
	})

	t.Run("stale sessions are expired on reissue", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		first := p.issue(t, doc)
		p.clock.Advance(entities.SignatureSessionTTL + time.Hour)

		fresh := p.issue(t, doc)
		if fresh.Reused || fresh.Session.ID == first.Session.ID {
			t.Fatalf("expected a fresh session")
		}
		if got := p.reloadSession(t, first.Session.Token).Status; got != entities.SignatureSessionExpired {
			t.Fatalf("expected the stale session expired, got %s", got)
		}
	})

	t.Run("invalid signer", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		if _, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "nope", ""); !errors.Is(err, ErrInvalidSigner) {
			t.Fatalf("expected ErrInvalidSigner, got %v", err)
		}
	})

	t.Run("other owner", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		if _, err := p.signatures.IssueSession(ctx, "owner-2", doc.ID, "", ""); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("signed document", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		p.sign(t, doc)
		if _, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "", ""); !errors.Is(err, ErrDocumentAlreadySigned) {
			t.Fatalf("expected ErrDocumentAlreadySigned, got %v", err)
		}
	})

	t.Run("cancelled document", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		if _, err := p.store.Documents().UpdateStatus(ctx, doc.ID, entities.DocumentStatusDraft, entities.DocumentStatusCancelled); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if _, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "", ""); !errors.Is(err, ErrDocumentCancelled) {
			t.Fatalf("expected ErrDocumentCancelled, got %v", err)
		}
	})

	t.Run("localhost base url never leaks", func(t *testing.T) {
		p := newPipeline(t, StaticBaseURL("http://localhost:3000"))
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		_, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "", "")
		if !errors.Is(err, ErrNoPublicBaseURL) || !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected a configuration error, got %v", err)
		}
		if len(p.sentMails()) != 0 {
			t.Fatalf("no invitation may be sent without a public link")
		}
	})

	t.Run("mail failure keeps the session", func(t *testing.T) {
		p := newPipeline(t)
		p.failMail(errors.New("relay down"))
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		issued, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if issued.EmailSent || issued.URL == "" {
			t.Fatalf("expected a link without email, got %+v", issued)
		}
	})
}

func TestSignatureUseCase_Open(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)
	doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
	issued := p.issue(t, doc)

	for i := 0; i < 2; i++ {
		view, err := p.signatures.Open(ctx, issued.Session.Token, "203.0.113.7", "ua")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Document.ID != doc.ID || view.Session.ID != issued.Session.ID {
			t.Fatalf("unexpected view %+v", view)
		}
	}
	history, _ := p.audit.History(ctx, doc.ID)
	if got := eventTypes(history); len(got) != 1 || got[0] != entities.EventViewed {
		t.Fatalf("expected one viewed event, got %v", got)
	}
	if history[0].IPAddress != "203.0.113.7" || history[0].SessionToken != issued.Session.Token {
		t.Fatalf("viewed event must carry the request context, got %+v", history[0])
	}

	t.Run("unknown token", func(t *testing.T) {
		if _, err := p.signatures.Open(ctx, "nope", "", ""); !errors.Is(err, ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("payment token is not a signature token", func(t *testing.T) {
		tok, err := p.tokens.Issue(ctx, entities.TokenPurposePayment, doc.ID, "pay-1", time.Hour)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := p.signatures.Open(ctx, tok.Value, "", ""); !errors.Is(err, ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		p.clock.Advance(entities.SignatureSessionTTL)
		if _, err := p.signatures.Open(ctx, issued.Session.Token, "", ""); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
		if got := p.reloadSession(t, issued.Session.Token).Status; got != entities.SignatureSessionExpired {
			t.Fatalf("expected session marked expired, got %s", got)
		}
	})
}

func TestSignatureUseCase_Complete(t *testing.T) {
	ctx := context.Background()
	complete := func(p *pipeline, token string) (CompletedSignature, error) {
		return p.signatures.Complete(ctx, CompleteSignatureCommand{Token: token, Payload: "sig-bytes", IPAddress: "203.0.113.7", UserAgent: "ua"})
	}

	t.Run("full flow", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindInvoice, 50000)
		issued := p.issue(t, doc)
		if _, err := p.signatures.Open(ctx, issued.Session.Token, "203.0.113.7", "ua"); err != nil {
			t.Fatalf("open: %v", err)
		}
		p.verify(t, issued.Session.Token)

		done, err := complete(p, issued.Session.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if done.DocumentStatus != entities.DocumentStatusSigned || !strings.HasPrefix(done.CertificateNumber, "CERT-") {
			t.Fatalf("unexpected completion %+v", done)
		}

		stored := p.reload(t, doc.ID)
		if stored.Status != entities.DocumentStatusSigned || stored.Signature == nil {
			t.Fatalf("expected a signed document, got %+v", stored)
		}
		if stored.Signature.SignerName != "Ada Lovelace" || stored.Signature.SessionID != issued.Session.ID {
			t.Fatalf("unexpected signature record %+v", stored.Signature)
		}
		if got := p.reloadSession(t, issued.Session.Token).Status; got != entities.SignatureSessionCompleted {
			t.Fatalf("expected session completed, got %s", got)
		}

		history, _ := p.audit.History(ctx, doc.ID)
		want := []entities.SignatureEventType{
			entities.EventViewed, entities.EventOTPSent, entities.EventOTPVerified,
			entities.EventSigned, entities.EventCertificateGenerated,
		}
		got := eventTypes(history)
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
		if history[3].Data["payload_sha256"] == "" || history[3].Data["signer_email"] != "ada@example.com" {
			t.Fatalf("signed event must carry the signing facts, got %+v", history[3].Data)
		}
	})

	t.Run("otp is required", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		issued := p.issue(t, doc)
		if _, err := complete(p, issued.Session.Token); !errors.Is(err, ErrOTPNotVerified) {
			t.Fatalf("expected ErrOTPNotVerified, got %v", err)
		}
		if p.reload(t, doc.ID).Status != entities.DocumentStatusSent {
			t.Fatalf("document must stay sent")
		}
	})

	t.Run("otp of another session does not count", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		first := p.issue(t, doc)
		p.verify(t, first.Session.Token)
		second, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "grace@example.com", "Grace")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := complete(p, second.Session.Token); !errors.Is(err, ErrOTPNotVerified) {
			t.Fatalf("expected ErrOTPNotVerified, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		p := newPipeline(t)
		issued := p.issue(t, p.newDocument(t, entities.DocumentKindQuote, 10000))
		_, err := p.signatures.Complete(ctx, CompleteSignatureCommand{Token: issued.Session.Token, Payload: "  "})
		if !errors.Is(err, ErrEmptySignature) {
			t.Fatalf("expected ErrEmptySignature, got %v", err)
		}
	})

	t.Run("second completion", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		issued := p.issue(t, doc)
		p.verify(t, issued.Session.Token)
		if _, err := complete(p, issued.Session.Token); err != nil {
			t.Fatalf("first completion: %v", err)
		}
		_, err := complete(p, issued.Session.Token)
		if !errors.Is(err, ErrSessionCompleted) || !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrSessionCompleted, got %v", err)
		}
	})

	t.Run("concurrent completions sign once", func(t *testing.T) {
		p := newPipeline(t)
		doc := p.newDocument(t, entities.DocumentKindQuote, 10000)
		a := p.issue(t, doc)
		b, err := p.signatures.IssueSession(ctx, testOwner, doc.ID, "grace@example.com", "Grace")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		p.verify(t, a.Session.Token)
		if _, err := p.otp.Send(ctx, b.Session.Token, "", "", ""); err != nil {
			t.Fatalf("send: %v", err)
		}
		if err := p.otp.Verify(ctx, b.Session.Token, testOTPCode, "", ""); err != nil {
			t.Fatalf("verify: %v", err)
		}

		var wg sync.WaitGroup
		errs := make([]error, 0, 6)
		var mu sync.Mutex
		for _, token := range []string{a.Session.Token, b.Session.Token, a.Session.Token, b.Session.Token, a.Session.Token, b.Session.Token} {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				_, err := complete(p, token)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}(token)
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrAlreadySigned), errors.Is(err, ErrPrecondition):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if wins != 1 {
			t.Fatalf("expected exactly one signature, got %d", wins)
		}
		history, _ := p.audit.History(ctx, doc.ID)
		signed := 0
		for _, e := range history {
			if e.Type == entities.EventSigned {
				signed++
			}
		}
		if signed != 1 {
			t.Fatalf("expected one signed event, got %d", signed)
		}
	})
}
