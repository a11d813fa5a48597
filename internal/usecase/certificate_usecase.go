package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const certificateHashVersion = "doctrust-certificate-v1"

// ICertificateUseCase assembles the signature certificate of a signed document.
type ICertificateUseCase interface {
	Generate(ctx context.Context, documentID, ip, userAgent string) (entities.Certificate, error)
	GenerateForOwner(ctx context.Context, ownerID, documentID, ip, userAgent string) (entities.Certificate, error)
}

type CertificateUseCase struct {
	documents interfaces.IDocumentRepository
	audit     IAuditUseCase
	now       func() time.Time
}

var _ ICertificateUseCase = (*CertificateUseCase)(nil)

func NewCertificateUseCase(documents interfaces.IDocumentRepository, audit IAuditUseCase) *CertificateUseCase {
	return &CertificateUseCase{documents: documents, audit: audit, now: time.Now}
}

func (u *CertificateUseCase) GenerateForOwner(ctx context.Context, ownerID, documentID, ip, userAgent string) (entities.Certificate, error) {
	if _, err := loadOwnedDocument(ctx, u.documents, ownerID, documentID); err != nil {
		return entities.Certificate{}, err
	}
	return u.Generate(ctx, documentID, ip, userAgent)
}

func (u *CertificateUseCase) Generate(ctx context.Context, documentID, ip, userAgent string) (entities.Certificate, error) {
	var (
		doc     entities.Document
		history []entities.SignatureEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = loadDocument(gctx, u.documents, documentID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = u.audit.History(gctx, documentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Certificate{}, err
	}
	if !doc.Status.IsSigned() || doc.Signature == nil {
		return entities.Certificate{}, ErrNotSigned
	}

	sig := doc.Signature
	hash := ComputeCertificateHash(doc)
	number := CertificateNumber(hash)

	generated, err := u.audit.Record(ctx, EventInput{
		DocumentID:   doc.ID,
		SessionToken: sessionTokenOf(history, sig.SessionID),
		Type:         entities.EventCertificateGenerated,
		Data: map[string]any{
			"certificate_number": number,
			"hash":               hash,
		},
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		zap.S().Errorw("[certificate][usecase] audit record failed", "document_id", doc.ID, "error", err)
		return entities.Certificate{}, err
	}

	zap.S().Infow("[certificate][usecase] certificate generated", "document_id", doc.ID, "certificate_number", number)
	return entities.Certificate{
		Number:         number,
		DocumentID:     doc.ID,
		DocumentNumber: doc.Number,
		DocumentKind:   doc.Kind,
		AmountCents:    doc.AmountCents,
		Currency:       doc.Currency,
		Hash:           hash,
		SignerName:     sig.SignerName,
		SignerEmail:    sig.SignerEmail,
		SignedAt:       sig.SignedAt,
		IPAddress:      sig.IPAddress,
		AuditExcerpt:   append(history, generated),
		GeneratedAt:    generated.CreatedAt,
	}, nil
}

// ComputeCertificateHash is deterministic over the signed facts of a
// document: regenerating a certificate yields the same hash.
func ComputeCertificateHash(doc entities.Document) string {
	var sig entities.SignatureRecord
	if doc.Signature != nil {
		sig = *doc.Signature
	}
	payloadSum := sha256.Sum256([]byte(sig.Payload))

	var b strings.Builder
	b.WriteString(certificateHashVersion)
	b.WriteByte('\n')
	field := func(k, v string) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
		b.WriteByte('\n')
	}
	field("document_id", doc.ID)
	field("document_number", doc.Number)
	field("document_kind", string(doc.Kind))
	field("amount_cents", strconv.FormatInt(doc.AmountCents, 10))
	field("currency", doc.Currency)
	field("signer_name", sig.SignerName)
	field("signer_email", strings.ToLower(sig.SignerEmail))
	field("signed_at", sig.SignedAt.UTC().Format(time.RFC3339Nano))
	field("payload_sha256", hex.EncodeToString(payloadSum[:]))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func CertificateNumber(hash string) string {
	if len(hash) > 16 {
		hash = hash[:16]
	}
	return "CERT-" + strings.ToUpper(hash)
}

func sessionTokenOf(events []entities.SignatureEvent, sessionID string) string {
	for _, e := range events {
		if e.Type == entities.EventSigned && e.Data["session_id"] == sessionID {
			return e.SessionToken
		}
	}
	return ""
}
