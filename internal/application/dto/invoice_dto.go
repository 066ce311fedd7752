package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// El tercero es customer_id o supplier_id según direction. Number es opcional;
// si va vacío se genera uno.
type CreateInvoiceRequest struct {
	Number      string               `json:"number,omitempty"`
	Date        Date                 `json:"date"`
	DueDate     Date                 `json:"due_date"`
	CustomerID  int64                `json:"customer_id,omitempty"`
	SupplierID  int64                `json:"supplier_id,omitempty"`
	Direction   string               `json:"direction"` // income|expense
	Status      string               `json:"status,omitempty"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	TaxAmount   decimal.Decimal      `json:"tax_amount"`
	Currency    string               `json:"currency,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Items       []InvoiceItemRequest `json:"items,omitempty"`
}

// InvoiceItemRequest línea de factura. El invoice_id que envíe el cliente se
// ignora: siempre se fuerza al id de la cabecera recién creada.
type InvoiceItemRequest struct {
	ProductID   int64           `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id (fusión parcial de la
// cabecera; las líneas no se tocan por esta vía).
type UpdateInvoiceRequest struct {
	Number      *string          `json:"number"`
	Date        *Date            `json:"date"`
	DueDate     *Date            `json:"due_date"`
	CustomerID  *int64           `json:"customer_id"`
	SupplierID  *int64           `json:"supplier_id"`
	Status      *string          `json:"status"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	TaxAmount   *decimal.Decimal `json:"tax_amount"`
	Currency    *string          `json:"currency"`
	Notes       *string          `json:"notes"`
}

// InvoiceResponse cabecera de factura en respuestas.
type InvoiceResponse struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	DueDate     string          `json:"due_date"`
	CustomerID  int64           `json:"customer_id,omitempty"`
	SupplierID  int64           `json:"supplier_id,omitempty"`
	Direction   string          `json:"direction"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Currency    string          `json:"currency,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// InvoiceItemResponse línea en respuestas.
type InvoiceItemResponse struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	ProductID   int64           `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceWithItemsResponse factura con sus líneas para GET /api/invoices/:id.
type InvoiceWithItemsResponse struct {
	Invoice InvoiceResponse       `json:"invoice"`
	Items   []InvoiceItemResponse `json:"items"`
}
