package interfaces

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
//   - ClaimCharge atomically binds a charge key to a payment id; when the key
//     is already bound it returns the existing id instead.
//   - Upsert is a single conditional put keyed by payment id: it creates or
//     replaces the row unless the stored row is already paid
//     (ErrConditionFailed).
//   - UpdateStatus is a compare-and-swap on status.

type IPaymentRepository interface {
	ClaimCharge(ctx context.Context, chargeKey, paymentID string) (string, error)
	Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, externalIntentID string, at time.Time) (entities.Payment, error)
}
