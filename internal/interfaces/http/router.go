package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/analytics"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC      *usecase.CustomerUseCase
	SupplierUC      *usecase.SupplierUseCase
	ProductUC       *usecase.ProductUseCase
	IncomeUC        *usecase.IncomeUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	TaxUC           *usecase.TaxUseCase
	BankAccountUC   *usecase.BankAccountUseCase
	ScheduleUC      *usecase.ScheduleUseCase
	SettingsUC      *usecase.SettingsUseCase
	InvoiceUC       *billing.InvoiceUseCase
	PaymentMethodUC *billing.PaymentMethodUseCase
	PaymentPlanUC   *billing.PaymentPlanUseCase
	PaymentUC       *billing.PaymentUseCase
	InstallmentUC   *billing.InstallmentUseCase
	ReportUC        *appanalytics.ReportUseCase
	DashboardUC     *appanalytics.DashboardUseCase

	RecentLimit   int
	UpcomingLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products (low-stock va antes de :id para que Fiber no lo capture)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Incomes
	incomes := api.Group("/incomes")
	incomeHandler := NewIncomeHandler(deps.IncomeUC)
	incomes.Post("/", incomeHandler.Create)
	incomes.Get("/", incomeHandler.List)
	incomes.Get("/:id", incomeHandler.GetByID)
	incomes.Put("/:id", incomeHandler.Update)
	incomes.Delete("/:id", incomeHandler.Delete)

	// Expenses
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Invoices (con líneas y pagos asociados; recent antes de :id)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PaymentUC, deps.RecentLimit)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/recent", invoiceHandler.Recent)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/payments", invoiceHandler.ListPayments)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Taxes
	taxes := api.Group("/taxes")
	taxHandler := NewTaxHandler(deps.TaxUC)
	taxes.Post("/", taxHandler.Create)
	taxes.Get("/", taxHandler.List)
	taxes.Get("/:id", taxHandler.GetByID)
	taxes.Put("/:id", taxHandler.Update)
	taxes.Delete("/:id", taxHandler.Delete)

	// Bank accounts
	bankAccounts := api.Group("/bank-accounts")
	bankAccountHandler := NewBankAccountHandler(deps.BankAccountUC)
	bankAccounts.Post("/", bankAccountHandler.Create)
	bankAccounts.Get("/", bankAccountHandler.List)
	bankAccounts.Get("/:id", bankAccountHandler.GetByID)
	bankAccounts.Put("/:id", bankAccountHandler.Update)
	bankAccounts.Delete("/:id", bankAccountHandler.Delete)

	// Payment schedules (upcoming antes de :id)
	schedules := api.Group("/payment-schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC, deps.UpcomingLimit)
	schedules.Post("/", scheduleHandler.Create)
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/upcoming", scheduleHandler.Upcoming)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Put("/:id", scheduleHandler.Update)
	schedules.Delete("/:id", scheduleHandler.Delete)

	// Payment methods
	methods := api.Group("/payment-methods")
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	methods.Post("/", methodHandler.Create)
	methods.Get("/", methodHandler.List)
	methods.Get("/:id", methodHandler.GetByID)
	methods.Put("/:id", methodHandler.Update)
	methods.Delete("/:id", methodHandler.Delete)

	// Payment plans
	plans := api.Group("/payment-plans")
	planHandler := NewPaymentPlanHandler(deps.PaymentPlanUC)
	plans.Post("/", planHandler.Create)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)
	plans.Put("/:id", planHandler.Update)
	plans.Delete("/:id", planHandler.Delete)

	// Payments + generador de cuotas
	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.InstallmentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Post("/installments", paymentHandler.GenerateInstallments)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Settings (singleton)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.RecentLimit)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/recent-transactions", reportHandler.RecentTransactions)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
