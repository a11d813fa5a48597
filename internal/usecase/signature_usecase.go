package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const signaturePath = "sign"

// IssuedSession is what the account owner gets back when sending a document.
type IssuedSession struct {
	Session   entities.SignatureSession
	URL       string
	Reused    bool
	EmailSent bool
}

// SessionView is what the signer sees when opening the link.
type SessionView struct {
	Session  entities.SignatureSession
	Document entities.Document
}

type CompleteSignatureCommand struct {
	Token      string
	Payload    string
	SignerName string
	IPAddress  string
	UserAgent  string
}

type CompletedSignature struct {
	DocumentID        string
	DocumentStatus    entities.DocumentStatus
	CertificateNumber string
	SignedAt          time.Time
}

// ISignatureUseCase drives a signature session from issuance to completion.
type ISignatureUseCase interface {
	IssueSession(ctx context.Context, ownerID, documentID, signerEmail, signerName string) (IssuedSession, error)
	Open(ctx context.Context, token, ip, userAgent string) (SessionView, error)
	Complete(ctx context.Context, cmd CompleteSignatureCommand) (CompletedSignature, error)
}

type SignatureUseCase struct {
	documents    interfaces.IDocumentRepository
	sessions     interfaces.ISignatureSessionRepository
	tokens       ITokenUseCase
	urls         *PublicURLBuilder
	audit        IAuditUseCase
	certificates ICertificateUseCase
	mailer       interfaces.IMailer
	now          func() time.Time
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(
	documents interfaces.IDocumentRepository,
	sessions interfaces.ISignatureSessionRepository,
	tokens ITokenUseCase,
	urls *PublicURLBuilder,
	audit IAuditUseCase,
	certificates ICertificateUseCase,
	mailer interfaces.IMailer,
) *SignatureUseCase {
	return &SignatureUseCase{
		documents:    documents,
		sessions:     sessions,
		tokens:       tokens,
		urls:         urls,
		audit:        audit,
		certificates: certificates,
		mailer:       mailer,
		now:          time.Now,
	}
}

func (u *SignatureUseCase) IssueSession(ctx context.Context, ownerID, documentID, signerEmail, signerName string) (IssuedSession, error) {
	log := zap.S().With("document_id", documentID)
	log.Infow("[signature][usecase] issue start")

	doc, err := loadOwnedDocument(ctx, u.documents, ownerID, documentID)
	if err != nil {
		return IssuedSession{}, err
	}
	switch {
	case doc.Status.IsSigned():
		return IssuedSession{}, ErrDocumentAlreadySigned
	case doc.Status == entities.DocumentStatusCancelled:
		return IssuedSession{}, ErrDocumentCancelled
	}

	signerEmail = strings.TrimSpace(signerEmail)
	if signerEmail == "" {
		signerEmail = doc.ClientEmail
	}
	if _, err := mail.ParseAddress(signerEmail); err != nil {
		return IssuedSession{}, ErrInvalidSigner
	}
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		signerName = doc.ClientName
	}

	now := u.now().UTC()
	live, err := u.liveSession(ctx, doc.ID, signerEmail, now)
	if err != nil {
		return IssuedSession{}, err
	}
	if live.ID != "" {
		return u.reuseSession(ctx, doc, live)
	}

	sessionID := uuid.NewString()
	token, err := u.tokens.Issue(ctx, entities.TokenPurposeSignature, doc.ID, sessionID, entities.SignatureSessionTTL)
	if err != nil {
		return IssuedSession{}, err
	}
	link, err := u.urls.Build(ctx, doc.OwnerID, signaturePath, token.Value)
	if err != nil {
		return IssuedSession{}, err
	}

	session := entities.SignatureSession{
		ID:          sessionID,
		DocumentID:  doc.ID,
		Token:       token.Value,
		SignerEmail: signerEmail,
		SignerName:  signerName,
		Status:      entities.SignatureSessionPending,
		CreatedAt:   now,
		ExpiresAt:   token.ExpiresAt,
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			log.Errorw("[signature][usecase] session create failed", "error", err)
			return IssuedSession{}, err
		}
		// a concurrent request claimed the signer's live slot first
		live, err = u.liveSession(ctx, doc.ID, signerEmail, now)
		if err != nil {
			return IssuedSession{}, err
		}
		if live.ID == "" {
			log.Warnw("[signature][usecase] live session claim lost", "session_id", sessionID)
			return IssuedSession{}, ErrStatusConflict
		}
		return u.reuseSession(ctx, doc, live)
	}

	if doc.Status == entities.DocumentStatusDraft {
		if _, err := u.documents.UpdateStatus(ctx, doc.ID, entities.DocumentStatusDraft, entities.DocumentStatusSent); err != nil {
			if !errors.Is(err, interfaces.ErrConditionFailed) {
				return IssuedSession{}, err
			}
			current, lerr := loadDocument(ctx, u.documents, doc.ID)
			if lerr != nil {
				return IssuedSession{}, lerr
			}
			if current.Status != entities.DocumentStatusSent {
				log.Warnw("[signature][usecase] document moved while issuing", "status", current.Status)
				return IssuedSession{}, ErrStatusConflict
			}
		}
	}

	issued := IssuedSession{Session: session, URL: link}
	if err := u.mailer.Send(ctx, signatureInvitation(doc, session, link)); err != nil {
		log.Warnw("[signature][usecase] invitation email failed", "session_id", session.ID, "error", err)
	} else {
		issued.EmailSent = true
	}
	log.Infow("[signature][usecase] issue success", "session_id", session.ID, "expires_at", session.ExpiresAt)
	return issued, nil
}

func (u *SignatureUseCase) Open(ctx context.Context, token, ip, userAgent string) (SessionView, error) {
	session, err := u.resolveSession(ctx, token)
	if err != nil {
		return SessionView{}, err
	}
	doc, err := loadDocument(ctx, u.documents, session.DocumentID)
	if err != nil {
		return SessionView{}, err
	}
	if session.Status != entities.SignatureSessionPending {
		return SessionView{Session: session, Document: doc}, nil
	}

	// viewed is informational: losing it never blocks the signer
	history, err := u.audit.History(ctx, doc.ID)
	if err != nil {
		zap.S().Warnw("[signature][usecase] history read failed", "document_id", doc.ID, "error", err)
	} else if !hasEvent(history, entities.EventViewed, session.Token) {
		if _, err := u.audit.Record(ctx, EventInput{
			DocumentID:   doc.ID,
			SessionToken: session.Token,
			Type:         entities.EventViewed,
			Data:         map[string]any{"session_id": session.ID},
			IPAddress:    ip,
			UserAgent:    userAgent,
		}); err != nil {
			zap.S().Warnw("[signature][usecase] viewed event dropped", "document_id", doc.ID, "error", err)
		}
	}
	return SessionView{Session: session, Document: doc}, nil
}

func (u *SignatureUseCase) Complete(ctx context.Context, cmd CompleteSignatureCommand) (CompletedSignature, error) {
	session, err := u.resolveSession(ctx, cmd.Token)
	if err != nil {
		return CompletedSignature{}, err
	}
	log := zap.S().With("document_id", session.DocumentID, "session_id", session.ID)
	log.Infow("[signature][usecase] complete start")

	switch session.Status {
	case entities.SignatureSessionCompleted:
		return CompletedSignature{}, ErrSessionCompleted
	case entities.SignatureSessionExpired:
		return CompletedSignature{}, ErrSessionClosed
	}
	payload := strings.TrimSpace(cmd.Payload)
	if payload == "" {
		return CompletedSignature{}, ErrEmptySignature
	}
	signerName := strings.TrimSpace(cmd.SignerName)
	if signerName == "" {
		signerName = session.SignerName
	}
	if signerName == "" {
		return CompletedSignature{}, ErrInvalidSigner
	}

	history, err := u.audit.History(ctx, session.DocumentID)
	if err != nil {
		return CompletedSignature{}, err
	}
	if !hasEvent(history, entities.EventOTPVerified, session.Token) {
		log.Warnw("[signature][usecase] signing attempted without otp")
		return CompletedSignature{}, ErrOTPNotVerified
	}

	doc, err := loadDocument(ctx, u.documents, session.DocumentID)
	if err != nil {
		return CompletedSignature{}, err
	}
	if doc.Status.IsSigned() {
		return CompletedSignature{}, ErrDocumentAlreadySigned
	}
	if !doc.Status.CanTransitionTo(entities.DocumentStatusSigned) {
		return CompletedSignature{}, ErrDocumentNotSignable
	}

	signedAt := u.now().UTC()
	payloadSum := sha256.Sum256([]byte(payload))
	signedEvent, err := u.audit.Prepare(ctx, EventInput{
		DocumentID:   doc.ID,
		SessionToken: session.Token,
		Type:         entities.EventSigned,
		Data: map[string]any{
			"session_id":     session.ID,
			"signer_name":    signerName,
			"signer_email":   session.SignerEmail,
			"payload_sha256": hex.EncodeToString(payloadSum[:]),
			"amount":         money.Format(doc.AmountCents),
			"currency":       doc.Currency,
		},
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	})
	if err != nil {
		return CompletedSignature{}, err
	}

	err = u.sessions.Complete(ctx, interfaces.SignatureCompletion{
		SessionID:    session.ID,
		DocumentID:   doc.ID,
		DocumentFrom: doc.Status,
		Signature: entities.SignatureRecord{
			SessionID:   session.ID,
			SignerName:  signerName,
			SignerEmail: session.SignerEmail,
			Payload:     payload,
			IPAddress:   cmd.IPAddress,
			UserAgent:   cmd.UserAgent,
			SignedAt:    signedAt,
		},
		Event: signedEvent,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Warnw("[signature][usecase] completion lost a race")
			return CompletedSignature{}, u.classifyCompletionConflict(ctx, session.ID, doc.ID)
		}
		log.Errorw("[signature][usecase] completion failed", "error", err)
		return CompletedSignature{}, err
	}

	out := CompletedSignature{DocumentID: doc.ID, DocumentStatus: entities.DocumentStatusSigned, SignedAt: signedAt}
	cert, err := u.certificates.Generate(ctx, doc.ID, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		log.Errorw("[signature][usecase] certificate generation failed", "error", err)
	} else {
		out.CertificateNumber = cert.Number
	}
	log.Infow("[signature][usecase] complete success", "certificate_number", out.CertificateNumber)
	return out, nil
}

// resolveSession maps a public token to its session, marking it expired on
// the way when its TTL has passed.
func (u *SignatureUseCase) resolveSession(ctx context.Context, token string) (entities.SignatureSession, error) {
	return resolveSignatureSession(ctx, u.tokens, u.sessions, u.now(), token)
}

func resolveSignatureSession(ctx context.Context, tokens ITokenUseCase, sessions interfaces.ISignatureSessionRepository, now time.Time, token string) (entities.SignatureSession, error) {
	res, err := tokens.Resolve(ctx, token)
	if err != nil {
		return entities.SignatureSession{}, err
	}
	if res.Purpose != entities.TokenPurposeSignature {
		return entities.SignatureSession{}, ErrTokenNotFound
	}
	session, err := sessions.GetByID(ctx, res.SubjectID)
	if err != nil {
		return entities.SignatureSession{}, err
	}
	if session.ID == "" {
		return entities.SignatureSession{}, ErrSessionNotFound
	}
	if session.Status == entities.SignatureSessionPending && (res.Expired || !session.IsLive(now)) {
		if err := sessions.UpdateStatus(ctx, session.ID, entities.SignatureSessionPending, entities.SignatureSessionExpired); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
			zap.S().Warnw("[signature][usecase] expire failed", "session_id", session.ID, "error", err)
		}
		return entities.SignatureSession{}, ErrSessionExpired
	}
	if session.Status == entities.SignatureSessionExpired {
		return entities.SignatureSession{}, ErrSessionExpired
	}
	return session, nil
}

// liveSession returns the pending, unexpired session of signerEmail on the
// document (zero value when none) and expires the dead ones it passes.
func (u *SignatureUseCase) liveSession(ctx context.Context, documentID, signerEmail string, now time.Time) (entities.SignatureSession, error) {
	existing, err := u.sessions.ListByDocumentID(ctx, documentID)
	if err != nil {
		return entities.SignatureSession{}, err
	}
	var live entities.SignatureSession
	for _, s := range existing {
		if s.Status != entities.SignatureSessionPending {
			continue
		}
		if !s.IsLive(now) {
			u.expire(ctx, s)
			continue
		}
		if live.ID == "" && s.IsFor(signerEmail) {
			live = s
		}
	}
	return live, nil
}

func (u *SignatureUseCase) reuseSession(ctx context.Context, doc entities.Document, s entities.SignatureSession) (IssuedSession, error) {
	link, err := u.urls.Build(ctx, doc.OwnerID, signaturePath, s.Token)
	if err != nil {
		return IssuedSession{}, err
	}
	zap.S().Infow("[signature][usecase] live session reused", "document_id", doc.ID, "session_id", s.ID)
	return IssuedSession{Session: s, URL: link, Reused: true}, nil
}

func (u *SignatureUseCase) expire(ctx context.Context, s entities.SignatureSession) {
	err := u.sessions.UpdateStatus(ctx, s.ID, entities.SignatureSessionPending, entities.SignatureSessionExpired)
	if err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		zap.S().Warnw("[signature][usecase] expire failed", "session_id", s.ID, "error", err)
	}
}

func (u *SignatureUseCase) classifyCompletionConflict(ctx context.Context, sessionID, documentID string) error {
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.Status == entities.SignatureSessionCompleted {
		return ErrSessionCompleted
	}
	if s.Status == entities.SignatureSessionExpired {
		return ErrSessionClosed
	}
	doc, err := loadDocument(ctx, u.documents, documentID)
	if err != nil {
		return err
	}
	if doc.Status.IsSigned() {
		return ErrDocumentAlreadySigned
	}
	return ErrStatusConflict
}

func signatureInvitation(doc entities.Document, s entities.SignatureSession, link string) interfaces.Email {
	label := "quote"
	if doc.Kind == entities.DocumentKindInvoice {
		label = "invoice"
	}
	subject := fmt.Sprintf("Signature requested: %s %s", label, doc.Number)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou are invited to review and sign %s %s (%s %s).\n\n%s\n\nThe link is valid until %s.\n",
		s.SignerName, label, doc.Number, money.Format(doc.AmountCents), doc.Currency,
		link, s.ExpiresAt.Format("2006-01-02"),
	)
	return interfaces.Email{To: s.SignerEmail, Subject: subject, Body: body}
}
