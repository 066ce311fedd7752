package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/analytics"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

type reportFixture struct {
	incomes   *memory.IncomeRepo
	expenses  *memory.ExpenseRepo
	invoices  *memory.InvoiceRepo
	schedules *memory.PaymentScheduleRepo
	uc        *analytics.ReportUseCase
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store := memory.NewStore()
	f := &reportFixture{
		incomes:   memory.NewIncomeRepository(store),
		expenses:  memory.NewExpenseRepository(store),
		invoices:  memory.NewInvoiceRepository(store),
		schedules: memory.NewPaymentScheduleRepository(store),
	}
	f.uc = analytics.NewReportUseCase(f.incomes, f.expenses, f.invoices, f.schedules)
	return f
}

func (f *reportFixture) seedIncome(t *testing.T, amount int64, date time.Time, category string) {
	t.Helper()
	require.NoError(t, f.incomes.Create(&entity.Income{
		Description: "ingreso",
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Category:    category,
	}))
}

func (f *reportFixture) seedExpense(t *testing.T, amount int64, date time.Time, category string) {
	t.Helper()
	require.NoError(t, f.expenses.Create(&entity.Expense{
		Description: "egreso",
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Category:    category,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_TotalesDelPeriodo(t *testing.T) {
	f := newReportFixture(t)
	f.seedIncome(t, 500, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), "ventas")
	f.seedIncome(t, 300, time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC), "ventas")
	f.seedIncome(t, 999, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), "ventas") // fuera del período
	f.seedExpense(t, 200, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), "arriendo")

	out, err := f.uc.Summary(
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(800)))
	assert.True(t, out.TotalExpense.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.NetIncome.Equal(decimal.NewFromInt(600)))
}

// Las facturas pendientes cuentan de todo el libro aunque caigan fuera del
// período consultado; los pagos programados pendientes sí se acotan.
func TestSummary_PendientesSinAcotarPorFecha(t *testing.T) {
	f := newReportFixture(t)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.invoices.Create(&entity.Invoice{
		Number: "FAC-VIEJA", Date: old, Direction: entity.InvoiceDirectionIncome,
		Status: entity.InvoiceStatusPending, TotalAmount: decimal.NewFromInt(1500),
	}))
	require.NoError(t, f.invoices.Create(&entity.Invoice{
		Number: "FAC-ENVIADA", Date: old, Direction: entity.InvoiceDirectionIncome,
		Status: entity.InvoiceStatusSent, TotalAmount: decimal.NewFromInt(500),
	}))
	require.NoError(t, f.invoices.Create(&entity.Invoice{
		Number: "FAC-PAGADA", Date: old, Direction: entity.InvoiceDirectionIncome,
		Status: entity.InvoiceStatusPaid, TotalAmount: decimal.NewFromInt(9999),
	}))

	require.NoError(t, f.schedules.Create(&entity.PaymentSchedule{
		Description: "dentro", Amount: decimal.NewFromInt(100),
		DueDate: time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, f.schedules.Create(&entity.PaymentSchedule{
		Description: "fuera", Amount: decimal.NewFromInt(777),
		DueDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}))

	out, err := f.uc.Summary(
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, out.PendingInvoices.Equal(decimal.NewFromInt(2000)),
		"pending + sent de todo el libro, sin filtro de fecha")
	assert.True(t, out.PendingPayments.Equal(decimal.NewFromInt(100)),
		"solo los vencimientos dentro del período")
}

// ──────────────────────────────────────────────────────────────────────────────
// Monthly
// ──────────────────────────────────────────────────────────────────────────────

// Todo mes del rango aparece, con ceros si no hubo actividad.
func TestMonthly_SiembraBucketsVacios(t *testing.T) {
	f := newReportFixture(t)

	out, err := f.uc.Monthly(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, out.MonthlyData, 3)
	assert.Equal(t, "2023-01", out.MonthlyData[0].Month)
	assert.Equal(t, "2023-02", out.MonthlyData[1].Month)
	assert.Equal(t, "2023-03", out.MonthlyData[2].Month)
	for _, b := range out.MonthlyData {
		assert.True(t, b.Income.IsZero())
		assert.True(t, b.Expense.IsZero())
		assert.True(t, b.NetIncome.IsZero())
	}
	assert.Empty(t, out.IncomeByCategory)
	assert.Empty(t, out.ExpenseByCategory)
}

func TestMonthly_AcumulaPorMes(t *testing.T) {
	f := newReportFixture(t)
	f.seedIncome(t, 100, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), "ventas")
	f.seedIncome(t, 50, time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC), "ventas")
	f.seedExpense(t, 30, time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC), "arriendo")

	out, err := f.uc.Monthly(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, out.MonthlyData, 2)

	enero := out.MonthlyData[0]
	assert.True(t, enero.Income.Equal(decimal.NewFromInt(150)))
	assert.True(t, enero.NetIncome.Equal(decimal.NewFromInt(150)))

	febrero := out.MonthlyData[1]
	assert.True(t, febrero.Expense.Equal(decimal.NewFromInt(30)))
	assert.True(t, febrero.NetIncome.Equal(decimal.NewFromInt(-30)))
}

// La pertenencia al reporte mensual es por mes, no por día: un registro del
// 5 de enero cuenta en el bucket 2023-01 aunque el rango empiece el 15. Los
// meses fuera del rango quedan fuera, también de las categorías.
func TestMonthly_PertenenciaPorClaveDeMes(t *testing.T) {
	f := newReportFixture(t)
	f.seedIncome(t, 100, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), "ventas")
	f.seedExpense(t, 40, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "arriendo")
	f.seedIncome(t, 999, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), "ventas") // mes fuera del rango

	out, err := f.uc.Monthly(
		time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, out.MonthlyData, 2)

	enero := out.MonthlyData[0]
	assert.Equal(t, "2023-01", enero.Month)
	assert.True(t, enero.Income.Equal(decimal.NewFromInt(100)),
		"el ingreso del 5 de enero pertenece al bucket aunque sea anterior a start")
	assert.True(t, enero.Expense.Equal(decimal.NewFromInt(40)))

	require.Len(t, out.IncomeByCategory, 1)
	assert.True(t, out.IncomeByCategory[0].Amount.Equal(decimal.NewFromInt(100)),
		"diciembre no entra en los acumulados por categoría")
}

// Las transacciones sin categoría caen en la etiqueta de reserva, y el orden
// de las categorías es el de primera aparición.
func TestMonthly_CategoriasConEtiquetaDeReserva(t *testing.T) {
	f := newReportFixture(t)
	jan := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	f.seedIncome(t, 100, jan, "ventas")
	f.seedIncome(t, 40, jan, "")
	f.seedIncome(t, 60, jan, "ventas")
	f.seedIncome(t, 10, jan, "intereses")

	out, err := f.uc.Monthly(jan, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, out.IncomeByCategory, 3)
	assert.Equal(t, "ventas", out.IncomeByCategory[0].Category)
	assert.True(t, out.IncomeByCategory[0].Amount.Equal(decimal.NewFromInt(160)))
	assert.Equal(t, "Sin categoría", out.IncomeByCategory[1].Category)
	assert.True(t, out.IncomeByCategory[1].Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "intereses", out.IncomeByCategory[2].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones recientes
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentTransactions_CombinaYOrdenaDescendente(t *testing.T) {
	f := newReportFixture(t)
	f.seedIncome(t, 1, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "")
	f.seedExpense(t, 2, time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC), "")
	f.seedIncome(t, 3, time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC), "")

	out, err := f.uc.RecentTransactions(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.TransactionKindExpense, out[0].Kind)
	assert.Equal(t, "2023-03-05", out[0].Date)
	assert.Equal(t, entity.TransactionKindIncome, out[1].Kind)
	assert.Equal(t, "2023-03-03", out[1].Date)
}
