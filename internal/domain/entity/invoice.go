package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"     // Borrador, aún no emitida
	InvoiceStatusPending   = "pending"   // Emitida, pendiente de envío
	InvoiceStatusSent      = "sent"      // Enviada al tercero, pendiente de cobro/pago
	InvoiceStatusPaid      = "paid"      // Cobrada o pagada en su totalidad
	InvoiceStatusOverdue   = "overdue"   // Vencida sin pago
	InvoiceStatusCancelled = "cancelled" // Anulada
)

// Dirección de la factura: venta (ingreso) o compra (egreso).
const (
	InvoiceDirectionIncome  = "income"
	InvoiceDirectionExpense = "expense"
)

// Invoice representa la cabecera de una factura. El tercero es CustomerID o
// SupplierID según Direction; el otro campo queda en cero. Las líneas viven
// como InvoiceItem y su ciclo de vida está atado a la cabecera (borrado en
// cascada).
type Invoice struct {
	ID          int64
	Number      string
	Date        time.Time // fecha de emisión
	DueDate     time.Time
	CustomerID  int64
	SupplierID  int64
	Direction   string
	Status      string
	TotalAmount decimal.Decimal
	TaxAmount   decimal.Decimal
	Currency    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
