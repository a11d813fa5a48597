package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	paymentPath           = "pay"
	defaultGatewayTimeout = 10 * time.Second
	maxSettleAttempts     = 3
)

// PaymentLinkCommand asks for a payable link against a signed document.
//
// AmountCents is read for deposits only. IdempotencyKey, when set, replaces
// the derived charge key so a client retry always maps to the same payment.
type PaymentLinkCommand struct {
	OwnerID        string
	DocumentID     string
	Type           entities.PaymentType
	AmountCents    int64
	InstallmentID  string
	IdempotencyKey string
}

type PaymentLink struct {
	Payment entities.Payment
	URL     string
	Reused  bool
}

// PaymentPage is what the public payment page renders.
type PaymentPage struct {
	Payment        entities.Payment
	DocumentNumber string
	DocumentKind   entities.DocumentKind
	ClientName     string
	RemainingCents int64
}

type PaymentOptions struct {
	GatewayTimeout  time.Duration
	NotificationURL string
}

type IPaymentUseCase interface {
	CreatePaymentLink(ctx context.Context, cmd PaymentLinkCommand) (PaymentLink, error)
	GetPublicPayment(ctx context.Context, token string) (PaymentPage, error)
	ConfirmFromProvider(ctx context.Context, providerPaymentID string) (entities.Payment, error)
	ListByDocument(ctx context.Context, ownerID, documentID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo            interfaces.IPaymentRepository
	documents       interfaces.IDocumentRepository
	installments    interfaces.IInstallmentRepository
	tokens          ITokenUseCase
	urls            *PublicURLBuilder
	gateway         interfaces.IPaymentGateway
	gatewayTimeout  time.Duration
	notificationURL string
	now             func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	documents interfaces.IDocumentRepository,
	installments interfaces.IInstallmentRepository,
	tokens ITokenUseCase,
	urls *PublicURLBuilder,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *PaymentUseCase {
	timeout := opts.GatewayTimeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	return &PaymentUseCase{
		repo:            repo,
		documents:       documents,
		installments:    installments,
		tokens:          tokens,
		urls:            urls,
		gateway:         gateway,
		gatewayTimeout:  timeout,
		notificationURL: opts.NotificationURL,
		now:             time.Now,
	}
}

func (u *PaymentUseCase) CreatePaymentLink(ctx context.Context, cmd PaymentLinkCommand) (PaymentLink, error) {
	log := zap.S().With("document_id", cmd.DocumentID, "payment_type", cmd.Type)
	log.Infow("[payment][usecase] create-link start")
	if !cmd.Type.Valid() {
		return PaymentLink{}, ErrInvalidPaymentType
	}
	if u.gateway == nil {
		return PaymentLink{}, ErrGatewayNotConfigured
	}

	var (
		doc      entities.Document
		payments []entities.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = loadOwnedDocument(gctx, u.documents, cmd.OwnerID, cmd.DocumentID)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = u.repo.ListByDocumentID(gctx, strings.TrimSpace(cmd.DocumentID))
		return err
	})
	if err := g.Wait(); err != nil {
		return PaymentLink{}, err
	}

	if doc.Status == entities.DocumentStatusPaid {
		return PaymentLink{}, ErrDocumentSettled
	}
	if !doc.Status.IsPayable() {
		log.Infow("[payment][usecase] document not payable", "status", doc.Status)
		return PaymentLink{}, ErrDocumentNotSigned
	}
	paid := entities.PaidCents(payments)
	remaining := doc.AmountCents - paid
	if remaining <= 0 {
		return PaymentLink{}, ErrDocumentSettled
	}

	var amount int64
	switch cmd.Type {
	case entities.PaymentTypeTotal:
		// a total link covers what no other open link covers
		amount = remaining - openCentsExceptTotals(payments)
		if amount <= 0 {
			log.Infow("[payment][usecase] balance committed to open links", "remaining_cents", remaining)
			return PaymentLink{}, ErrBalanceCommitted
		}
	case entities.PaymentTypeDeposit:
		if cmd.AmountCents <= 0 {
			return PaymentLink{}, ErrInvalidAmount
		}
		amount = cmd.AmountCents
	case entities.PaymentTypeInstallment:
		inst, err := u.payableInstallment(ctx, doc.ID, cmd.InstallmentID)
		if err != nil {
			return PaymentLink{}, err
		}
		amount = inst.AmountCents
	}
	if amount > remaining {
		log.Infow("[payment][usecase] amount exceeds remaining", "amount_cents", amount, "remaining_cents", remaining)
		return PaymentLink{}, ErrAmountExceedsRemaining
	}

	key := chargeKey(doc.ID, cmd, amount, paid)
	if open, ok := reusableLink(payments, cmd, key, amount); ok {
		link, err := u.urls.Build(ctx, doc.OwnerID, paymentPath, open.ID)
		if err != nil {
			return PaymentLink{}, err
		}
		log.Infow("[payment][usecase] open payment reused", "payment_id", open.ID)
		return PaymentLink{Payment: open, URL: link, Reused: true}, nil
	}
	if cmd.Type == entities.PaymentTypeTotal {
		var err error
		if payments, err = u.supersedeTotals(ctx, payments, key); err != nil {
			return PaymentLink{}, err
		}
	}
	if committed := committedCents(payments, key); amount > remaining-committed {
		log.Infow("[payment][usecase] balance committed to open links", "amount_cents", amount, "remaining_cents", remaining, "committed_cents", committed)
		return PaymentLink{}, ErrBalanceCommitted
	}

	id, err := u.repo.ClaimCharge(ctx, key, NewTokenValue())
	if err != nil {
		log.Errorw("[payment][usecase] charge claim failed", "error", err)
		return PaymentLink{}, err
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return PaymentLink{}, err
	}
	if existing.ID != "" {
		if existing.Status == entities.PaymentStatusPaid {
			return PaymentLink{}, ErrPaymentAlreadyPaid
		}
		if existing.IsOpen() && existing.AmountCents == amount {
			link, err := u.urls.Build(ctx, doc.OwnerID, paymentPath, existing.ID)
			if err != nil {
				return PaymentLink{}, err
			}
			log.Infow("[payment][usecase] pending payment reused", "payment_id", existing.ID)
			return PaymentLink{Payment: existing, URL: link, Reused: true}, nil
		}
	}

	if _, err := u.tokens.IssueWithValue(ctx, id, entities.TokenPurposePayment, doc.ID, id, entities.PaymentLinkTTL); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		return PaymentLink{}, err
	}
	link, err := u.urls.Build(ctx, doc.OwnerID, paymentPath, id)
	if err != nil {
		return PaymentLink{}, err
	}

	gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()
	session, err := u.gateway.CreateCheckoutSession(gctx, interfaces.CheckoutRequest{
		Reference:   id,
		Title:       paymentTitle(doc, cmd.Type),
		AmountCents: amount,
		Currency:    doc.Currency,
		PayerEmail:  doc.ClientEmail,
		Metadata: map[string]any{
			"document_id":    doc.ID,
			"payment_type":   string(cmd.Type),
			"installment_id": cmd.InstallmentID,
		},
		ReturnURL:       link,
		NotificationURL: u.notificationURL,
	})
	if err != nil {
		log.Errorw("[payment][usecase] gateway checkout failed", "payment_id", id, "error", err)
		return PaymentLink{}, externalError(err)
	}

	now := u.now().UTC()
	p := entities.Payment{
		ID:                id,
		DocumentID:        doc.ID,
		OwnerID:           doc.OwnerID,
		Type:              cmd.Type,
		InstallmentID:     strings.TrimSpace(cmd.InstallmentID),
		AmountCents:       amount,
		Currency:          doc.Currency,
		ChargeKey:         key,
		ExternalSessionID: session.SessionID,
		CheckoutURL:       session.URL,
		Status:            entities.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if !existing.CreatedAt.IsZero() {
		p.CreatedAt = existing.CreatedAt
	}
	stored, err := u.repo.Upsert(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return PaymentLink{}, ErrPaymentAlreadyPaid
		}
		log.Errorw("[payment][usecase] upsert failed", "payment_id", id, "error", err)
		return PaymentLink{}, err
	}
	if err := u.holdBalance(ctx, doc, stored); err != nil {
		return PaymentLink{}, err
	}
	log.Infow("[payment][usecase] create-link success", "payment_id", stored.ID, "amount", money.Format(amount))
	return PaymentLink{Payment: stored, URL: link}, nil
}

func (u *PaymentUseCase) GetPublicPayment(ctx context.Context, token string) (PaymentPage, error) {
	res, err := u.tokens.ResolveFor(ctx, token, entities.TokenPurposePayment)
	if err != nil {
		return PaymentPage{}, err
	}
	p, err := u.repo.GetByID(ctx, res.SubjectID)
	if err != nil {
		return PaymentPage{}, err
	}
	if p.ID == "" {
		return PaymentPage{}, ErrPaymentNotFound
	}
	var (
		doc      entities.Document
		payments []entities.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = loadDocument(gctx, u.documents, p.DocumentID)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = u.repo.ListByDocumentID(gctx, p.DocumentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return PaymentPage{}, err
	}
	remaining := doc.AmountCents - entities.PaidCents(payments)
	if remaining < 0 {
		remaining = 0
	}
	return PaymentPage{
		Payment:        p,
		DocumentNumber: doc.Number,
		DocumentKind:   doc.Kind,
		ClientName:     doc.ClientName,
		RemainingCents: remaining,
	}, nil
}

// ConfirmFromProvider applies a processor notification. It is safe to replay:
// an approved payment that is already paid only re-runs the settle cascade.
func (u *PaymentUseCase) ConfirmFromProvider(ctx context.Context, providerPaymentID string) (entities.Payment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	log := zap.S().With("provider_payment_id", providerPaymentID)

	gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()
	pp, err := u.gateway.GetPayment(gctx, providerPaymentID)
	if err != nil {
		log.Errorw("[payment][usecase] provider lookup failed", "error", err)
		return entities.Payment{}, externalError(err)
	}
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(pp.Reference))
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		log.Warnw("[payment][usecase] unknown external reference", "reference", pp.Reference)
		return entities.Payment{}, ErrPaymentNotFound
	}
	log = log.With("payment_id", p.ID, "provider_status", pp.Status)
	now := u.now().UTC()

	switch pp.Status {
	case interfaces.ProviderStatusApproved:
		if pp.AmountCents != p.AmountCents || (pp.Currency != "" && !strings.EqualFold(pp.Currency, p.Currency)) {
			log.Errorw("[payment][usecase] amount mismatch", "expected_cents", p.AmountCents, "provider_cents", pp.AmountCents, "provider_currency", pp.Currency)
			return entities.Payment{}, ErrAmountMismatch
		}
		if p.Status != entities.PaymentStatusPaid {
			p, err = u.transition(ctx, p, entities.PaymentStatusPaid, pp.ID, now)
			if err != nil {
				return entities.Payment{}, err
			}
		}
		if err := u.settle(ctx, p, now); err != nil {
			log.Errorw("[payment][usecase] settle cascade failed", "error", err)
			return entities.Payment{}, err
		}
		log.Infow("[payment][usecase] payment confirmed")
		return p, nil

	case interfaces.ProviderStatusRejected, interfaces.ProviderStatusCanceled:
		if p.Status == entities.PaymentStatusPending {
			p, err = u.transition(ctx, p, entities.PaymentStatusFailed, pp.ID, now)
			if err != nil {
				return entities.Payment{}, err
			}
		}
		if p.Status == entities.PaymentStatusFailed && p.InstallmentID != "" {
			u.releaseInstallment(ctx, p.InstallmentID)
		}
		log.Infow("[payment][usecase] payment failed")
		return p, nil
	}

	log.Infow("[payment][usecase] provider status ignored")
	return p, nil
}

func (u *PaymentUseCase) ListByDocument(ctx context.Context, ownerID, documentID string) ([]entities.Payment, error) {
	doc, err := loadOwnedDocument(ctx, u.documents, ownerID, documentID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].CreatedAt.Before(payments[j].CreatedAt) })
	return payments, nil
}

func (u *PaymentUseCase) payableInstallment(ctx context.Context, documentID, installmentID string) (entities.Installment, error) {
	installmentID = strings.TrimSpace(installmentID)
	if installmentID == "" || u.installments == nil {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	inst, err := u.installments.GetByID(ctx, installmentID)
	if err != nil {
		return entities.Installment{}, err
	}
	if inst.ID == "" || inst.InvoiceID != documentID {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	switch inst.Status {
	case entities.InstallmentPaid:
		return entities.Installment{}, ErrInstallmentPaid
	case entities.InstallmentCancelled:
		return entities.Installment{}, ErrInstallmentCancelled
	}
	return inst, nil
}

// transition moves a payment with a CAS; losing the race to the same target
// status counts as success.
func (u *PaymentUseCase) transition(ctx context.Context, p entities.Payment, to entities.PaymentStatus, externalID string, at time.Time) (entities.Payment, error) {
	if !p.Status.CanTransitionTo(to) {
		return entities.Payment{}, ErrStatusConflict
	}
	updated, err := u.repo.UpdateStatus(ctx, p.ID, p.Status, to, externalID, at)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Payment{}, err
	}
	current, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if current.Status == to {
		return current, nil
	}
	return entities.Payment{}, ErrStatusConflict
}

// settle propagates a paid payment to its installment and its document.
func (u *PaymentUseCase) settle(ctx context.Context, p entities.Payment, at time.Time) error {
	if p.InstallmentID != "" && u.installments != nil {
		if err := u.settleInstallment(ctx, p, at); err != nil {
			return err
		}
	}
	for attempt := 0; attempt < maxSettleAttempts; attempt++ {
		doc, err := loadDocument(ctx, u.documents, p.DocumentID)
		if err != nil {
			return err
		}
		payments, err := u.repo.ListByDocumentID(ctx, doc.ID)
		if err != nil {
			return err
		}
		collected := entities.PaidCents(payments)
		if collected > doc.AmountCents {
			zap.S().Errorw("[payment][usecase] document overpaid", "document_id", doc.ID, "payment_id", p.ID,
				"collected_cents", collected, "total_cents", doc.AmountCents, "overpaid_cents", collected-doc.AmountCents)
		}
		target := entities.DocumentStatusPartiallyPaid
		if collected >= doc.AmountCents {
			target = entities.DocumentStatusPaid
		}
		if doc.Status == target || doc.Status == entities.DocumentStatusPaid {
			return nil
		}
		if !doc.Status.CanTransitionTo(target) {
			zap.S().Warnw("[payment][usecase] document cannot take payment status", "document_id", doc.ID, "status", doc.Status, "target", target)
			return nil
		}
		_, err = u.documents.UpdateStatus(ctx, doc.ID, doc.Status, target)
		if err == nil {
			zap.S().Infow("[payment][usecase] document status updated", "document_id", doc.ID, "status", target)
			return nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return err
		}
	}
	return ErrStatusConflict
}

func (u *PaymentUseCase) settleInstallment(ctx context.Context, p entities.Payment, at time.Time) error {
	for attempt := 0; attempt < maxSettleAttempts; attempt++ {
		inst, err := u.installments.GetByID(ctx, p.InstallmentID)
		if err != nil {
			return err
		}
		if inst.ID == "" || inst.Status == entities.InstallmentPaid {
			return nil
		}
		if !inst.Status.CanTransitionTo(entities.InstallmentPaid) {
			zap.S().Warnw("[payment][usecase] installment cannot be settled", "installment_id", inst.ID, "status", inst.Status)
			return nil
		}
		paidAt := at
		_, err = u.installments.UpdateStatus(ctx, inst.ID, inst.Status, entities.InstallmentPaid, interfaces.InstallmentPatch{
			PaymentID:   p.ID,
			PaymentLink: inst.PaymentLink,
			PaidAt:      &paidAt,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return err
		}
	}
	return ErrStatusConflict
}

func (u *PaymentUseCase) releaseInstallment(ctx context.Context, installmentID string) {
	if u.installments == nil {
		return
	}
	inst, err := u.installments.GetByID(ctx, installmentID)
	if err != nil || inst.Status != entities.InstallmentProcessing {
		return
	}
	_, err = u.installments.UpdateStatus(ctx, inst.ID, entities.InstallmentProcessing, entities.InstallmentPending, interfaces.InstallmentPatch{
		PaymentID:   inst.PaymentID,
		PaymentLink: inst.PaymentLink,
	})
	if err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		zap.S().Warnw("[payment][usecase] installment release failed", "installment_id", inst.ID, "error", err)
	}
}

// holdBalance re-reads the document after a link is stored. When links opened
// concurrently no longer fit the balance together, the stored one is failed;
// both sides of an exact race may fail and a retry reopens one of them.
func (u *PaymentUseCase) holdBalance(ctx context.Context, doc entities.Document, p entities.Payment) error {
	payments, err := u.repo.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return err
	}
	committed := entities.PaidCents(payments) + entities.OpenCents(payments, p.ID)
	if committed+p.AmountCents <= doc.AmountCents {
		return nil
	}
	zap.S().Warnw("[payment][usecase] concurrent link lost the balance", "document_id", doc.ID, "payment_id", p.ID, "committed_cents", committed)
	if _, err := u.transition(ctx, p, entities.PaymentStatusFailed, "", u.now().UTC()); err != nil {
		return err
	}
	return ErrBalanceCommitted
}

// supersedeTotals fails open total links of another charge; at most one total
// link is payable at a time.
func (u *PaymentUseCase) supersedeTotals(ctx context.Context, payments []entities.Payment, key string) ([]entities.Payment, error) {
	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Type == entities.PaymentTypeTotal && p.IsOpen() && p.ChargeKey != key {
			failed, err := u.transition(ctx, p, entities.PaymentStatusFailed, "", u.now().UTC())
			if err != nil {
				return nil, err
			}
			zap.S().Infow("[payment][usecase] open total link superseded", "document_id", p.DocumentID, "payment_id", p.ID)
			p = failed
		}
		out = append(out, p)
	}
	return out, nil
}

// reusableLink finds the open link that already serves this charge. Total
// links also match by amount since their key moves with every settlement.
func reusableLink(payments []entities.Payment, cmd PaymentLinkCommand, key string, amount int64) (entities.Payment, bool) {
	for _, p := range payments {
		if !p.IsOpen() {
			continue
		}
		if p.ChargeKey == key && p.AmountCents == amount {
			return p, true
		}
		if strings.TrimSpace(cmd.IdempotencyKey) == "" && cmd.Type == entities.PaymentTypeTotal &&
			p.Type == entities.PaymentTypeTotal && p.AmountCents == amount {
			return p, true
		}
	}
	return entities.Payment{}, false
}

func openCentsExceptTotals(payments []entities.Payment) int64 {
	var sum int64
	for _, p := range payments {
		if p.IsOpen() && p.Type != entities.PaymentTypeTotal {
			sum += p.AmountCents
		}
	}
	return sum
}

// committedCents is what open links of other charges may still collect.
func committedCents(payments []entities.Payment, key string) int64 {
	var sum int64
	for _, p := range payments {
		if p.IsOpen() && p.ChargeKey != key {
			sum += p.AmountCents
		}
	}
	return sum
}

// chargeKey names one logical charge. paid-so-far is part of it so that a
// second "total" after a deposit is a different charge.
func chargeKey(documentID string, cmd PaymentLinkCommand, amount, paid int64) string {
	if k := strings.TrimSpace(cmd.IdempotencyKey); k != "" {
		return documentID + "|key|" + k
	}
	if cmd.Type == entities.PaymentTypeInstallment {
		return documentID + "|" + string(cmd.Type) + "|" + strings.TrimSpace(cmd.InstallmentID)
	}
	return strings.Join([]string{
		documentID,
		string(cmd.Type),
		"",
		strconv.FormatInt(amount, 10),
		strconv.FormatInt(paid, 10),
	}, "|")
}

func paymentTitle(doc entities.Document, t entities.PaymentType) string {
	label := "Quote"
	if doc.Kind == entities.DocumentKindInvoice {
		label = "Invoice"
	}
	switch t {
	case entities.PaymentTypeDeposit:
		return fmt.Sprintf("%s %s - deposit", label, doc.Number)
	case entities.PaymentTypeInstallment:
		return fmt.Sprintf("%s %s - installment", label, doc.Number)
	}
	return fmt.Sprintf("%s %s", label, doc.Number)
}
