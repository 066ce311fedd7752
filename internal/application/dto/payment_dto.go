package dto

import "github.com/shopspring/decimal"

// CreatePaymentMethodRequest body para POST /api/payment-methods.
type CreatePaymentMethodRequest struct {
	Name                 string `json:"name"`
	Type                 string `json:"type,omitempty"`
	IsDefaultForInvoices bool   `json:"is_default_for_invoices,omitempty"`
}

// UpdatePaymentMethodRequest body para PUT /api/payment-methods/:id.
type UpdatePaymentMethodRequest struct {
	Name                 *string `json:"name"`
	Type                 *string `json:"type"`
	IsDefaultForInvoices *bool   `json:"is_default_for_invoices"`
}

// PaymentMethodResponse medio de pago en respuestas.
type PaymentMethodResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Type                 string `json:"type,omitempty"`
	IsDefaultForInvoices bool   `json:"is_default_for_invoices"`
}

// CreatePaymentPlanRequest body para POST /api/payment-plans.
type CreatePaymentPlanRequest struct {
	Name             string          `json:"name"`
	InstallmentCount int             `json:"installment_count"`
	IntervalDays     int             `json:"interval_days"`
	FeePercentage    decimal.Decimal `json:"fee_percentage"`
}

// UpdatePaymentPlanRequest body para PUT /api/payment-plans/:id.
type UpdatePaymentPlanRequest struct {
	Name             *string          `json:"name"`
	InstallmentCount *int             `json:"installment_count"`
	IntervalDays     *int             `json:"interval_days"`
	FeePercentage    *decimal.Decimal `json:"fee_percentage"`
}

// PaymentPlanResponse plan de cuotas en respuestas.
type PaymentPlanResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	InstallmentCount int             `json:"installment_count"`
	IntervalDays     int             `json:"interval_days"`
	FeePercentage    decimal.Decimal `json:"fee_percentage"`
}

// CreatePaymentRequest body para POST /api/payments (pago suelto sobre factura).
type CreatePaymentRequest struct {
	InvoiceID       int64           `json:"invoice_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            Date            `json:"date"`
	PaymentMethodID int64           `json:"payment_method_id,omitempty"`
	Status          string          `json:"status,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// UpdatePaymentRequest body para PUT /api/payments/:id (fusión parcial).
type UpdatePaymentRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Date            *Date            `json:"date"`
	PaymentMethodID *int64           `json:"payment_method_id"`
	Status          *string          `json:"status"`
	Reference       *string          `json:"reference"`
	Notes           *string          `json:"notes"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID              int64           `json:"id"`
	InvoiceID       int64           `json:"invoice_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	PaymentMethodID int64           `json:"payment_method_id,omitempty"`
	Status          string          `json:"status"`
	PaymentPlanID   int64           `json:"payment_plan_id,omitempty"`
	InstallmentNo   int             `json:"installment_no,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// CreateInstallmentsRequest body para POST /api/payments/installments.
type CreateInstallmentsRequest struct {
	InvoiceID     int64           `json:"invoice_id"`
	PaymentPlanID int64           `json:"payment_plan_id"`
	Principal     decimal.Decimal `json:"principal"`
}
