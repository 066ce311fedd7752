package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura.
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	ProductID   int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // porcentaje (0, 5, 19...)
	LineTotal   decimal.Decimal // quantity * unit_price, con impuesto incluido si aplica
}
