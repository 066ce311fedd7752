package analytics

import (
	"fmt"
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
)

// DashboardUseCase compone el resumen del dashboard: finanzas del mes en
// curso más los selectores de actividad reciente y el contador de stock bajo.
type DashboardUseCase struct {
	reports   *ReportUseCase
	invoices  *billing.InvoiceUseCase
	schedules *usecase.ScheduleUseCase
	products  *usecase.ProductUseCase

	recentLimit   int
	upcomingLimit int
}

// NewDashboardUseCase construye el caso de uso. Los límites acotan los
// listados de actividad reciente y próximos vencimientos.
func NewDashboardUseCase(
	reports *ReportUseCase,
	invoices *billing.InvoiceUseCase,
	schedules *usecase.ScheduleUseCase,
	products *usecase.ProductUseCase,
	recentLimit, upcomingLimit int,
) *DashboardUseCase {
	return &DashboardUseCase{
		reports:       reports,
		invoices:      invoices,
		schedules:     schedules,
		products:      products,
		recentLimit:   recentLimit,
		upcomingLimit: upcomingLimit,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco lecturas en paralelo sobre el almacén:
//  1. Summary(mes en curso)
//  2. RecentTransactions(recentLimit)
//  3. Recent facturas(recentLimit)
//  4. Upcoming pagos(upcomingLimit)
//  5. LowStock(umbral por producto)
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type summaryResult struct {
		summary *dto.FinancialSummaryDTO
		err     error
	}
	type transactionsResult struct {
		items []dto.TransactionResponse
		err   error
	}
	type invoicesResult struct {
		items []dto.InvoiceResponse
		err   error
	}
	type schedulesResult struct {
		items []dto.ScheduleResponse
		err   error
	}
	type lowStockResult struct {
		items []dto.ProductResponse
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	transactionsCh := make(chan transactionsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	schedulesCh := make(chan schedulesResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		s, err := uc.reports.Summary(monthStart, monthEnd)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		t, err := uc.reports.RecentTransactions(uc.recentLimit)
		transactionsCh <- transactionsResult{t, err}
	}()
	go func() {
		i, err := uc.invoices.Recent(uc.recentLimit)
		invoicesCh <- invoicesResult{i, err}
	}()
	go func() {
		s, err := uc.schedules.Upcoming(uc.upcomingLimit)
		schedulesCh <- schedulesResult{s, err}
	}()
	go func() {
		p, err := uc.products.LowStock(nil)
		lowStockCh <- lowStockResult{p, err}
	}()

	summary := <-summaryCh
	transactions := <-transactionsCh
	invoices := <-invoicesCh
	schedules := <-schedulesCh
	lowStock := <-lowStockCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumen del mes: %w", summary.err)
	}
	if transactions.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", transactions.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas recientes: %w", invoices.err)
	}
	if schedules.err != nil {
		return nil, fmt.Errorf("dashboard: próximos vencimientos: %w", schedules.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	return &dto.DashboardSummaryDTO{
		Summary:            *summary.summary,
		RecentTransactions: transactions.items,
		RecentInvoices:     invoices.items,
		UpcomingPayments:   schedules.items,
		LowStockCount:      len(lowStock.items),
	}, nil
}
