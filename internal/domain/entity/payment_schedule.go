package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Períodos de recurrencia de un pago programado.
const (
	RecurrenceWeekly    = "weekly"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"
)

// PaymentSchedule representa un pago programado (alquiler, servicios, cuotas).
// IsPaid es monótono: solo pasa de false a true, y al marcarse pagado se fija
// PaymentDate.
type PaymentSchedule struct {
	ID               int64
	Description      string
	Amount           decimal.Decimal
	DueDate          time.Time
	IsPaid           bool
	PaymentDate      *time.Time // solo cuando IsPaid pasa a true
	Category         string
	Currency         string
	IsRecurring      bool
	RecurrencePeriod string // weekly|monthly|quarterly|yearly; vacío si no recurre
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
