package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción para listados combinados (dashboard).
const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"
)

// Income representa un ingreso del libro contable.
// CustomerID e InvoiceID son referencias por id; cero significa "sin vínculo".
type Income struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Currency    string
	CustomerID  int64
	InvoiceID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expense representa un egreso del libro contable.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Currency    string
	SupplierID  int64
	InvoiceID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
