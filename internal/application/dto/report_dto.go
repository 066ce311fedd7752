package dto

import "github.com/shopspring/decimal"

// FinancialSummaryDTO respuesta de GET /api/reports/summary.
// PendingInvoices suma facturas en estado pending/sent de todo el libro
// (sin acotar por el período); PendingPayments sí se acota al período.
type FinancialSummaryDTO struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	NetIncome       decimal.Decimal `json:"net_income"`
	PendingInvoices decimal.Decimal `json:"pending_invoices"`
	PendingPayments decimal.Decimal `json:"pending_payments"`
}

// MonthBucketDTO un mes del reporte ("2023-01"), presente aunque no haya
// actividad.
type MonthBucketDTO struct {
	Month     string          `json:"month"` // YYYY-MM
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// CategoryAmountDTO total acumulado por categoría.
type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyReportDTO respuesta de GET /api/reports/monthly.
// MonthlyData va ordenado por clave de mes ascendente; el orden de las
// categorías es el de primera aparición.
type MonthlyReportDTO struct {
	MonthlyData       []MonthBucketDTO    `json:"monthly_data"`
	IncomeByCategory  []CategoryAmountDTO `json:"income_by_category"`
	ExpenseByCategory []CategoryAmountDTO `json:"expense_by_category"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: finanzas del
// mes en curso más los selectores de actividad reciente.
type DashboardSummaryDTO struct {
	Summary            FinancialSummaryDTO   `json:"summary"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	RecentInvoices     []InvoiceResponse     `json:"recent_invoices"`
	UpcomingPayments   []ScheduleResponse    `json:"upcoming_payments"`
	LowStockCount      int                   `json:"low_stock_count"`
}
