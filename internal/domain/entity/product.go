package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// Un producto está en "stock bajo" cuando StockQuantity <= AlertThreshold
// (o el umbral global que el selector reciba como override).
type Product struct {
	ID             int64
	Name           string
	SKU            string // código único del producto
	Category       string
	Unit           string // unidad de medida (unidad, kg, caja...)
	PurchasePrice  decimal.Decimal
	SellingPrice   decimal.Decimal
	StockQuantity  decimal.Decimal
	AlertThreshold decimal.Decimal // umbral propio de alerta de stock
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
