package interfaces

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
)

// InstallmentPatch carries the fields set together with a status change.
type InstallmentPatch struct {
	PaymentID   string
	PaymentLink string
	PaidAt      *time.Time
}

// IInstallmentRepository abstracts persistence for installment schedules.
//
// CreateSchedule writes every installment of an invoice plus a schedule
// marker in one transaction; an existing marker yields ErrConditionFailed.

type IInstallmentRepository interface {
	CreateSchedule(ctx context.Context, invoiceID string, items []entities.Installment) error
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Installment, error)
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.InstallmentStatus, patch InstallmentPatch) (entities.Installment, error)
}
