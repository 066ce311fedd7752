package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	StockQuantity  decimal.Decimal `json:"stock_quantity"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

// UpdateProductRequest body para PUT /api/products/:id (fusión parcial).
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	SKU            *string          `json:"sku"`
	Category       *string          `json:"category"`
	Unit           *string          `json:"unit"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	StockQuantity  *decimal.Decimal `json:"stock_quantity"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	StockQuantity  decimal.Decimal `json:"stock_quantity"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}
