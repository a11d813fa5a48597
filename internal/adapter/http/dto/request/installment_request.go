package request

import "time"

// ScheduleInstallmentsRequest splits an invoice into equal monthly installments.
// The first one falls due 30 days after start_date, today when omitted.
type ScheduleInstallmentsRequest struct {
	Installments int        `json:"installments" binding:"required" example:"3"`
	StartDate    *time.Time `json:"start_date,omitempty"`
}
