package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount representa una cuenta bancaria de la organización.
type BankAccount struct {
	ID            int64
	Name          string
	BankName      string
	AccountNumber string // número de cuenta o IBAN
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
