// Package analytics contiene los casos de uso de agregación financiera:
// resumen de período, reporte mensual y el resumen del dashboard.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// Etiqueta usada cuando una transacción no trae categoría.
const uncategorized = "Sin categoría"

const monthKeyLayout = "2006-01"

// ReportUseCase agrega los registros del libro en reportes de solo lectura.
// Los importes se suman tal cual, sin conversión de moneda.
type ReportUseCase struct {
	incomeRepo   repository.IncomeRepository
	expenseRepo  repository.ExpenseRepository
	invoiceRepo  repository.InvoiceRepository
	scheduleRepo repository.PaymentScheduleRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	incomeRepo repository.IncomeRepository,
	expenseRepo repository.ExpenseRepository,
	invoiceRepo repository.InvoiceRepository,
	scheduleRepo repository.PaymentScheduleRepository,
) *ReportUseCase {
	return &ReportUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		invoiceRepo:  invoiceRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Summary calcula el resumen financiero del período [start, end] inclusive.
//
// PendingInvoices suma las facturas en estado pending o sent de TODO el libro,
// sin acotar por fecha: una deuda abierta sigue abierta aunque sea vieja.
// PendingPayments en cambio sí se acota: pagos programados sin pagar cuyo
// vencimiento cae dentro del período.
func (uc *ReportUseCase) Summary(start, end time.Time) (*dto.FinancialSummaryDTO, error) {
	incomes, err := uc.incomeRepo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	totalExpense := decimal.Zero
	for _, ex := range expenses {
		totalExpense = totalExpense.Add(ex.Amount)
	}

	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	pendingInvoices := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusPending || inv.Status == entity.InvoiceStatusSent {
			pendingInvoices = pendingInvoices.Add(inv.TotalAmount)
		}
	}

	schedules, err := uc.scheduleRepo.List()
	if err != nil {
		return nil, err
	}
	pendingPayments := decimal.Zero
	for _, s := range schedules {
		if !s.IsPaid && !s.DueDate.Before(start) && !s.DueDate.After(end) {
			pendingPayments = pendingPayments.Add(s.Amount)
		}
	}

	return &dto.FinancialSummaryDTO{
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetIncome:       totalIncome.Sub(totalExpense),
		PendingInvoices: pendingInvoices,
		PendingPayments: pendingPayments,
	}, nil
}

// Monthly construye el reporte mensual del período [start, end]. Se siembra un
// bucket en cero por cada mes del rango, de forma que los meses sin actividad
// aparecen igual. La pertenencia es por mes, no por día: un registro cuenta si
// su clave "YYYY-MM" tiene bucket, aunque su día caiga antes de start o
// después de end. Los registros de meses fuera del rango se descartan, también
// de los acumulados por categoría.
func (uc *ReportUseCase) Monthly(start, end time.Time) (*dto.MonthlyReportDTO, error) {
	incomes, err := uc.incomeRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !cursor.After(end) {
		key := cursor.Format(monthKeyLayout)
		buckets[key] = &bucket{income: decimal.Zero, expense: decimal.Zero}
		keys = append(keys, key)
		cursor = cursor.AddDate(0, 1, 0)
	}

	incomeByCat := newCategoryRollup()
	for _, in := range incomes {
		b, ok := buckets[in.Date.Format(monthKeyLayout)]
		if !ok {
			continue
		}
		b.income = b.income.Add(in.Amount)
		incomeByCat.add(in.Category, in.Amount)
	}
	expenseByCat := newCategoryRollup()
	for _, ex := range expenses {
		b, ok := buckets[ex.Date.Format(monthKeyLayout)]
		if !ok {
			continue
		}
		b.expense = b.expense.Add(ex.Amount)
		expenseByCat.add(ex.Category, ex.Amount)
	}

	sort.Strings(keys)
	monthly := make([]dto.MonthBucketDTO, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		monthly = append(monthly, dto.MonthBucketDTO{
			Month:     key,
			Income:    b.income,
			Expense:   b.expense,
			NetIncome: b.income.Sub(b.expense),
		})
	}

	return &dto.MonthlyReportDTO{
		MonthlyData:       monthly,
		IncomeByCategory:  incomeByCat.slice(),
		ExpenseByCategory: expenseByCat.slice(),
	}, nil
}

// RecentTransactions devuelve los últimos movimientos del libro, ingresos y
// egresos combinados, ordenados por fecha descendente y truncados a limit.
func (uc *ReportUseCase) RecentTransactions(limit int) ([]dto.TransactionResponse, error) {
	incomes, err := uc.incomeRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}

	type dated struct {
		at   time.Time
		resp dto.TransactionResponse
	}
	combined := make([]dated, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		combined = append(combined, dated{at: in.Date, resp: dto.TransactionResponse{
			Kind:        entity.TransactionKindIncome,
			ID:          in.ID,
			Description: in.Description,
			Amount:      in.Amount,
			Date:        dto.FormatDate(in.Date),
			Category:    in.Category,
			Currency:    in.Currency,
		}})
	}
	for _, ex := range expenses {
		combined = append(combined, dated{at: ex.Date, resp: dto.TransactionResponse{
			Kind:        entity.TransactionKindExpense,
			ID:          ex.ID,
			Description: ex.Description,
			Amount:      ex.Amount,
			Date:        dto.FormatDate(ex.Date),
			Category:    ex.Category,
			Currency:    ex.Currency,
		}})
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].at.After(combined[j].at)
	})
	if limit > 0 && len(combined) > limit {
		combined = combined[:limit]
	}
	out := make([]dto.TransactionResponse, 0, len(combined))
	for _, d := range combined {
		out = append(out, d.resp)
	}
	return out, nil
}

// categoryRollup acumula importes por categoría conservando el orden de
// primera aparición.
type categoryRollup struct {
	totals map[string]decimal.Decimal
	order  []string
}

func newCategoryRollup() *categoryRollup {
	return &categoryRollup{totals: make(map[string]decimal.Decimal)}
}

func (r *categoryRollup) add(category string, amount decimal.Decimal) {
	if category == "" {
		category = uncategorized
	}
	if _, ok := r.totals[category]; !ok {
		r.order = append(r.order, category)
	}
	r.totals[category] = r.totals[category].Add(amount)
}

func (r *categoryRollup) slice() []dto.CategoryAmountDTO {
	out := make([]dto.CategoryAmountDTO, 0, len(r.order))
	for _, category := range r.order {
		out = append(out, dto.CategoryAmountDTO{Category: category, Amount: r.totals[category]})
	}
	return out
}
