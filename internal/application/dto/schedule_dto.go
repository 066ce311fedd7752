package dto

import "github.com/shopspring/decimal"

// CreateScheduleRequest body para POST /api/payment-schedules.
type CreateScheduleRequest struct {
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          Date            `json:"due_date"`
	Category         string          `json:"category,omitempty"`
	Currency         string          `json:"currency,omitempty"`
	IsRecurring      bool            `json:"is_recurring,omitempty"`
	RecurrencePeriod string          `json:"recurrence_period,omitempty"`
}

// UpdateScheduleRequest body para PUT /api/payment-schedules/:id.
// IsPaid solo acepta la transición false→true; al marcarse pagado se fija la
// fecha de pago (payment_date explícito o "ahora").
type UpdateScheduleRequest struct {
	Description      *string          `json:"description"`
	Amount           *decimal.Decimal `json:"amount"`
	DueDate          *Date            `json:"due_date"`
	IsPaid           *bool            `json:"is_paid"`
	PaymentDate      *Date            `json:"payment_date"`
	Category         *string          `json:"category"`
	Currency         *string          `json:"currency"`
	IsRecurring      *bool            `json:"is_recurring"`
	RecurrencePeriod *string          `json:"recurrence_period"`
}

// ScheduleResponse pago programado en respuestas.
type ScheduleResponse struct {
	ID               int64           `json:"id"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          string          `json:"due_date"`
	IsPaid           bool            `json:"is_paid"`
	PaymentDate      string          `json:"payment_date,omitempty"`
	Category         string          `json:"category,omitempty"`
	Currency         string          `json:"currency,omitempty"`
	IsRecurring      bool            `json:"is_recurring,omitempty"`
	RecurrencePeriod string          `json:"recurrence_period,omitempty"`
}
