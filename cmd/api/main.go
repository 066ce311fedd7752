package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/analytics"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
	httpRouter "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/interfaces/http"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/pkg/config"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén volátil: todo vive en memoria y muere con el proceso.
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

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	incomeUC := usecase.NewIncomeUseCase(incomeRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	taxUC := usecase.NewTaxUseCase(taxRepo)
	bankAccountUC := usecase.NewBankAccountUseCase(bankAccountRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, settingsRepo)
	methodUC := billing.NewPaymentMethodUseCase(methodRepo)
	planUC := billing.NewPaymentPlanUseCase(planRepo)
	paymentUC := billing.NewPaymentUseCase(paymentRepo)
	installmentUC := billing.NewInstallmentUseCase(invoiceRepo, planRepo, methodRepo, paymentRepo)

	reportUC := appanalytics.NewReportUseCase(incomeRepo, expenseRepo, invoiceRepo, scheduleRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(
		reportUC, invoiceUC, scheduleUC, productUC,
		cfg.Report.RecentLimit, cfg.Report.UpcomingLimit,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:      customerUC,
		SupplierUC:      supplierUC,
		ProductUC:       productUC,
		IncomeUC:        incomeUC,
		ExpenseUC:       expenseUC,
		TaxUC:           taxUC,
		BankAccountUC:   bankAccountUC,
		ScheduleUC:      scheduleUC,
		SettingsUC:      settingsUC,
		InvoiceUC:       invoiceUC,
		PaymentMethodUC: methodUC,
		PaymentPlanUC:   planUC,
		PaymentUC:       paymentUC,
		InstallmentUC:   installmentUC,
		ReportUC:        reportUC,
		DashboardUC:     dashboardUC,
		RecentLimit:     cfg.Report.RecentLimit,
		UpcomingLimit:   cfg.Report.UpcomingLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
