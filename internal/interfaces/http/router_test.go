package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/analytics"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
	apphttp "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la aplicación completa sobre un almacén vacío.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()

	customerRepo := memory.NewCustomerRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	productRepo := memory.NewProductRepository(store)
	incomeRepo := memory.NewIncomeRepository(store)
	expenseRepo := memory.NewExpenseRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	taxRepo := memory.NewTaxRepository(store)
	bankAccountRepo := memory.NewBankAccountRepository(store)
	scheduleRepo := memory.NewPaymentScheduleRepository(store)
	methodRepo := memory.NewPaymentMethodRepository(store)
	planRepo := memory.NewPaymentPlanRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)
	settingsRepo := memory.NewSettingsRepository(store)

	productUC := usecase.NewProductUseCase(productRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, settingsRepo)
	reportUC := appanalytics.NewReportUseCase(incomeRepo, expenseRepo, invoiceRepo, scheduleRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:      usecase.NewCustomerUseCase(customerRepo),
		SupplierUC:      usecase.NewSupplierUseCase(supplierRepo),
		ProductUC:       productUC,
		IncomeUC:        usecase.NewIncomeUseCase(incomeRepo),
		ExpenseUC:       usecase.NewExpenseUseCase(expenseRepo),
		TaxUC:           usecase.NewTaxUseCase(taxRepo),
		BankAccountUC:   usecase.NewBankAccountUseCase(bankAccountRepo),
		ScheduleUC:      scheduleUC,
		SettingsUC:      usecase.NewSettingsUseCase(settingsRepo),
		InvoiceUC:       invoiceUC,
		PaymentMethodUC: billing.NewPaymentMethodUseCase(methodRepo),
		PaymentPlanUC:   billing.NewPaymentPlanUseCase(planRepo),
		PaymentUC:       billing.NewPaymentUseCase(paymentRepo),
		InstallmentUC:   billing.NewInstallmentUseCase(invoiceRepo, planRepo, methodRepo, paymentRepo),
		ReportUC:        reportUC,
		DashboardUC:     appanalytics.NewDashboardUseCase(reportUC, invoiceUC, scheduleUC, productUC, 5, 5),
		RecentLimit:     5,
		UpcomingLimit:   5,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo HTTP de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"name": "Acme SAS", "tax_number": "900123456",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, int64(1), created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/customers/1", map[string]any{"email": "v@acme.co"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, "v@acme.co", updated.Email)
	assert.Equal(t, "Acme SAS", updated.Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/customers/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomers_IDNoNumerico(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", body.Code)
}

func TestInstallments_EndpointGeneraCuotas(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/payment-methods", map[string]any{
		"name": "Transferencia", "is_default_for_invoices": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/payment-plans", map[string]any{
		"name": "3 cuotas", "installment_count": 3, "interval_days": 30, "fee_percentage": "2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"direction": "income", "date": "2024-03-01", "total_amount": "1000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	invoice := decode[dto.InvoiceResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/payments/installments", map[string]any{
		"invoice_id": invoice.ID, "payment_plan_id": 1, "principal": "1000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	payments := decode[[]dto.PaymentResponse](t, resp)
	require.Len(t, payments, 3)
	for _, p := range payments {
		assert.True(t, p.Amount.Equal(decimal.RequireFromString("340.00")))
	}

	// Las cuotas quedan consultables por factura.
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/1/payments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	linked := decode[[]dto.PaymentResponse](t, resp)
	assert.Len(t, linked, 3)
}

func TestInstallments_SinPlanDevuelve422(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/payment-methods", map[string]any{"name": "Efectivo"})
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"direction": "income", "date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/payments/installments", map[string]any{
		"invoice_id": 1, "payment_plan_id": 99, "principal": "100",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSTALLMENTS", body.Code)
}

func TestDashboard_RespondeConEstructuraCompleta(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.NotNil(t, out.RecentTransactions)
	assert.NotNil(t, out.RecentInvoices)
	assert.NotNil(t, out.UpcomingPayments)
	assert.Zero(t, out.LowStockCount)
}
