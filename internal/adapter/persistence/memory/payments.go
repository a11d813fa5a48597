package memory

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"
)

type PaymentRepository struct{ s *Store }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) ClaimCharge(_ context.Context, chargeKey, paymentID string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if id, ok := r.s.charges[chargeKey]; ok {
		return id, nil
	}
	r.s.charges[chargeKey] = paymentID
	return paymentID, nil
}

func (r *PaymentRepository) Upsert(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.payments[p.ID]; ok && cur.Status == entities.PaymentStatusPaid {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	p.Paid = p.Status == entities.PaymentStatusPaid
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payments[id], nil
}

func (r *PaymentRepository) ListByDocumentID(_ context.Context, documentID string) ([]entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Payment, 0)
	for _, p := range r.s.payments {
		if p.DocumentID == documentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepository) UpdateStatus(_ context.Context, id string, from, to entities.PaymentStatus, externalIntentID string, at time.Time) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok || p.Status != from {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	p.Status = to
	p.Paid = to == entities.PaymentStatusPaid
	p.UpdatedAt = at
	if externalIntentID != "" {
		p.ExternalIntentID = externalIntentID
	}
	if p.Paid {
		p.PaidAt = &at
	}
	r.s.payments[id] = p
	return p, nil
}

type InstallmentRepository struct{ s *Store }

var _ interfaces.IInstallmentRepository = (*InstallmentRepository)(nil)

func (r *InstallmentRepository) CreateSchedule(_ context.Context, invoiceID string, items []entities.Installment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.schedules[invoiceID]; ok {
		return interfaces.ErrConditionFailed
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := r.s.installments[it.ID]; ok {
			return interfaces.ErrConditionFailed
		}
		ids = append(ids, it.ID)
	}
	for _, it := range items {
		r.s.installments[it.ID] = it
	}
	r.s.schedules[invoiceID] = ids
	return nil
}

func (r *InstallmentRepository) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := r.s.schedules[invoiceID]
	out := make([]entities.Installment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.installments[id])
	}
	return out, nil
}

func (r *InstallmentRepository) GetByID(_ context.Context, id string) (entities.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.installments[id], nil
}

func (r *InstallmentRepository) UpdateStatus(_ context.Context, id string, from, to entities.InstallmentStatus, patch interfaces.InstallmentPatch) (entities.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.installments[id]
	if !ok || it.Status != from {
		return entities.Installment{}, interfaces.ErrConditionFailed
	}
	it.Status = to
	if patch.PaymentID != "" {
		it.PaymentID = patch.PaymentID
	}
	if patch.PaymentLink != "" {
		it.PaymentLink = patch.PaymentLink
	}
	if patch.PaidAt != nil {
		at := *patch.PaidAt
		it.PaidAt = &at
	}
	r.s.installments[id] = it
	return it, nil
}
