package dto

import "github.com/shopspring/decimal"

// CreateIncomeRequest body para POST /api/incomes.
type CreateIncomeRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Category    string          `json:"category,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	CustomerID  int64           `json:"customer_id,omitempty"`
	InvoiceID   int64           `json:"invoice_id,omitempty"`
}

// UpdateIncomeRequest body para PUT /api/incomes/:id (fusión parcial).
type UpdateIncomeRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *Date            `json:"date"`
	Category    *string          `json:"category"`
	Currency    *string          `json:"currency"`
	CustomerID  *int64           `json:"customer_id"`
	InvoiceID   *int64           `json:"invoice_id"`
}

// IncomeResponse ingreso en respuestas.
type IncomeResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	CustomerID  int64           `json:"customer_id,omitempty"`
	InvoiceID   int64           `json:"invoice_id,omitempty"`
}

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Category    string          `json:"category,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	SupplierID  int64           `json:"supplier_id,omitempty"`
	InvoiceID   int64           `json:"invoice_id,omitempty"`
}

// UpdateExpenseRequest body para PUT /api/expenses/:id (fusión parcial).
type UpdateExpenseRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *Date            `json:"date"`
	Category    *string          `json:"category"`
	Currency    *string          `json:"currency"`
	SupplierID  *int64           `json:"supplier_id"`
	InvoiceID   *int64           `json:"invoice_id"`
}

// ExpenseResponse egreso en respuestas.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	SupplierID  int64           `json:"supplier_id,omitempty"`
	InvoiceID   int64           `json:"invoice_id,omitempty"`
}

// TransactionResponse transacción etiquetada (ingreso o egreso) para el
// listado combinado del dashboard.
type TransactionResponse struct {
	Kind        string          `json:"kind"` // income|expense
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Currency    string          `json:"currency,omitempty"`
}
