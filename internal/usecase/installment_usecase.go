package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/domain/money"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InstallmentLink is the result of sending one installment for payment.
type InstallmentLink struct {
	Installment entities.Installment
	Payment     entities.Payment
	URL         string
}

type IInstallmentUseCase interface {
	Schedule(ctx context.Context, ownerID, invoiceID string, count int, base *time.Time) ([]entities.Installment, error)
	List(ctx context.Context, ownerID, invoiceID string) ([]entities.Installment, error)
	SendLink(ctx context.Context, ownerID, installmentID string) (InstallmentLink, error)
}

type InstallmentUseCase struct {
	repo      interfaces.IInstallmentRepository
	documents interfaces.IDocumentRepository
	payments  IPaymentUseCase
	now       func() time.Time
}

var _ IInstallmentUseCase = (*InstallmentUseCase)(nil)

func NewInstallmentUseCase(repo interfaces.IInstallmentRepository, documents interfaces.IDocumentRepository, payments IPaymentUseCase) *InstallmentUseCase {
	return &InstallmentUseCase{repo: repo, documents: documents, payments: payments, now: time.Now}
}

func (u *InstallmentUseCase) Schedule(ctx context.Context, ownerID, invoiceID string, count int, base *time.Time) ([]entities.Installment, error) {
	log := zap.S().With("invoice_id", invoiceID, "count", count)
	log.Infow("[installment][usecase] schedule start")
	if count < 1 || count > entities.MaxInstallments {
		return nil, ErrInvalidInstallmentCount
	}
	doc, err := loadOwnedDocument(ctx, u.documents, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	if doc.Kind != entities.DocumentKindInvoice {
		return nil, ErrNotAnInvoice
	}
	switch doc.Status {
	case entities.DocumentStatusCancelled:
		return nil, ErrDocumentCancelled
	case entities.DocumentStatusPaid:
		return nil, ErrDocumentSettled
	}

	existing, err := u.repo.ListByInvoiceID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return u.reuse(existing, count)
	}

	amounts, err := money.Split(doc.AmountCents, count)
	if err != nil {
		return nil, ErrInvalidInstallmentCount
	}
	start := u.now().UTC()
	if base != nil {
		start = base.UTC()
	}
	start = start.Truncate(24 * time.Hour)
	now := u.now().UTC()

	items := make([]entities.Installment, count)
	for i := range items {
		items[i] = entities.Installment{
			ID:          uuid.NewString(),
			InvoiceID:   doc.ID,
			OwnerID:     doc.OwnerID,
			Number:      i + 1,
			Total:       count,
			AmountCents: amounts[i],
			Currency:    doc.Currency,
			DueDate:     start.AddDate(0, 0, 30*(i+1)),
			Status:      entities.InstallmentPending,
			CreatedAt:   now,
		}
	}
	if err := u.repo.CreateSchedule(ctx, doc.ID, items); err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			log.Errorw("[installment][usecase] schedule create failed", "error", err)
			return nil, err
		}
		existing, err := u.repo.ListByInvoiceID(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		return u.reuse(existing, count)
	}
	log.Infow("[installment][usecase] schedule created", "first_due", items[0].DueDate)
	return u.withEffectiveStatus(items), nil
}

func (u *InstallmentUseCase) List(ctx context.Context, ownerID, invoiceID string) ([]entities.Installment, error) {
	doc, err := loadOwnedDocument(ctx, u.documents, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByInvoiceID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	return u.withEffectiveStatus(items), nil
}

// SendLink opens a payment link for one installment. Siblings can be paid in
// any order.
func (u *InstallmentUseCase) SendLink(ctx context.Context, ownerID, installmentID string) (InstallmentLink, error) {
	inst, err := u.repo.GetByID(ctx, strings.TrimSpace(installmentID))
	if err != nil {
		return InstallmentLink{}, err
	}
	if inst.ID == "" || inst.OwnerID != ownerID {
		return InstallmentLink{}, ErrInstallmentNotFound
	}
	log := zap.S().With("installment_id", inst.ID, "invoice_id", inst.InvoiceID)
	switch inst.Status {
	case entities.InstallmentPaid:
		return InstallmentLink{}, ErrInstallmentPaid
	case entities.InstallmentCancelled:
		return InstallmentLink{}, ErrInstallmentCancelled
	}

	link, err := u.payments.CreatePaymentLink(ctx, PaymentLinkCommand{
		OwnerID:       ownerID,
		DocumentID:    inst.InvoiceID,
		Type:          entities.PaymentTypeInstallment,
		InstallmentID: inst.ID,
	})
	if err != nil {
		log.Warnw("[installment][usecase] payment link failed", "error", err)
		return InstallmentLink{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, inst.ID, inst.Status, entities.InstallmentProcessing, interfaces.InstallmentPatch{
		PaymentID:   link.Payment.ID,
		PaymentLink: link.URL,
	})
	if err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return InstallmentLink{}, err
		}
		current, gerr := u.repo.GetByID(ctx, inst.ID)
		if gerr != nil {
			return InstallmentLink{}, gerr
		}
		if current.Status == entities.InstallmentPaid {
			return InstallmentLink{}, ErrInstallmentPaid
		}
		if current.Status != entities.InstallmentProcessing || current.PaymentID != link.Payment.ID {
			return InstallmentLink{}, ErrStatusConflict
		}
		updated = current
	}
	log.Infow("[installment][usecase] link sent", "payment_id", link.Payment.ID)
	return InstallmentLink{Installment: updated, Payment: link.Payment, URL: link.URL}, nil
}

func (u *InstallmentUseCase) reuse(existing []entities.Installment, count int) ([]entities.Installment, error) {
	if len(existing) != count || existing[0].Total != count {
		return nil, ErrScheduleExists
	}
	return u.withEffectiveStatus(existing), nil
}

func (u *InstallmentUseCase) withEffectiveStatus(items []entities.Installment) []entities.Installment {
	now := u.now()
	out := make([]entities.Installment, len(items))
	for i, it := range items {
		it.Status = it.EffectiveStatus(now)
		out[i] = it
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
