package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax representa un tipo de impuesto configurado (IVA, retención...).
type Tax struct {
	ID          int64
	Name        string
	Rate        decimal.Decimal // porcentaje
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
