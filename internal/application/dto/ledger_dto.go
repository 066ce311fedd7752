package dto

import "github.com/shopspring/decimal"

// CreateTaxRequest body para POST /api/taxes.
type CreateTaxRequest struct {
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description,omitempty"`
}

// UpdateTaxRequest body para PUT /api/taxes/:id (fusión parcial).
type UpdateTaxRequest struct {
	Name        *string          `json:"name"`
	Rate        *decimal.Decimal `json:"rate"`
	Description *string          `json:"description"`
}

// TaxResponse impuesto en respuestas.
type TaxResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description,omitempty"`
}

// CreateBankAccountRequest body para POST /api/bank-accounts.
type CreateBankAccountRequest struct {
	Name          string          `json:"name"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// UpdateBankAccountRequest body para PUT /api/bank-accounts/:id (fusión parcial).
type UpdateBankAccountRequest struct {
	Name          *string          `json:"name"`
	BankName      *string          `json:"bank_name"`
	AccountNumber *string          `json:"account_number"`
	Currency      *string          `json:"currency"`
	Balance       *decimal.Decimal `json:"balance"`
}

// BankAccountResponse cuenta bancaria en respuestas.
type BankAccountResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}
