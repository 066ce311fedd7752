package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// PaymentMethod representa un medio de pago (efectivo, transferencia, tarjeta).
// IsDefaultForInvoices marca el método preferido al generar cuotas de factura.
type PaymentMethod struct {
	ID                   int64
	Name                 string
	Type                 string // cash, transfer, card...
	IsDefaultForInvoices bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PaymentPlan representa una política de pago en cuotas: cuántas cuotas,
// cada cuántos días y con qué recargo porcentual.
type PaymentPlan struct {
	ID               int64
	Name             string
	InstallmentCount int
	IntervalDays     int
	FeePercentage    decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Payment representa un pago aplicado a una factura. PaymentPlanID e
// InstallmentNo solo se llenan cuando el pago nació de un plan de cuotas
// (InstallmentNo es 1-based).
type Payment struct {
	ID              int64
	InvoiceID       int64
	Amount          decimal.Decimal
	Date            time.Time
	PaymentMethodID int64
	Status          string
	PaymentPlanID   int64
	InstallmentNo   int
	Reference       string // legible: <número de factura>-<cuota>/<total>
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
