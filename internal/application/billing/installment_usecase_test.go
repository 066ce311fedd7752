package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type installmentFixture struct {
	store    *memory.Store
	invoices *memory.InvoiceRepo
	plans    *memory.PaymentPlanRepo
	methods  *memory.PaymentMethodRepo
	payments *memory.PaymentRepo
	uc       *billing.InstallmentUseCase
}

func newInstallmentFixture(t *testing.T) *installmentFixture {
	t.Helper()
	store := memory.NewStore()
	f := &installmentFixture{
		store:    store,
		invoices: memory.NewInvoiceRepository(store),
		plans:    memory.NewPaymentPlanRepository(store),
		methods:  memory.NewPaymentMethodRepository(store),
		payments: memory.NewPaymentRepository(store),
	}
	f.uc = billing.NewInstallmentUseCase(f.invoices, f.plans, f.methods, f.payments)
	return f
}

func (f *installmentFixture) seedInvoice(t *testing.T, date time.Time) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{
		Number:    "FAC-TEST01",
		Date:      date,
		Direction: entity.InvoiceDirectionIncome,
		Status:    entity.InvoiceStatusPending,
	}
	require.NoError(t, f.invoices.Create(inv))
	return inv
}

func (f *installmentFixture) seedPlan(t *testing.T, count, intervalDays int, fee string) *entity.PaymentPlan {
	t.Helper()
	plan := &entity.PaymentPlan{
		Name:             "Plan de prueba",
		InstallmentCount: count,
		IntervalDays:     intervalDays,
		FeePercentage:    decimal.RequireFromString(fee),
	}
	require.NoError(t, f.plans.Create(plan))
	return plan
}

func (f *installmentFixture) seedMethod(t *testing.T, name string, isDefault bool) *entity.PaymentMethod {
	t.Helper()
	m := &entity.PaymentMethod{Name: name, IsDefaultForInvoices: isDefault}
	require.NoError(t, f.methods.Create(m))
	return m
}

func sumAmounts(payments []dto.PaymentResponse) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación de cuotas
// ──────────────────────────────────────────────────────────────────────────────

// 1000 con 2% de recargo en 3 cuotas: total 1020.00, cada cuota 340.00.
func TestGenerate_RepartoExacto(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	plan := f.seedPlan(t, 3, 30, "2")
	f.seedMethod(t, "Transferencia", true)

	out, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, sumAmounts(out).Equal(decimal.RequireFromString("1020.00")),
		"la suma de cuotas debe ser exactamente principal × (1 + fee/100)")
	for _, p := range out {
		assert.True(t, p.Amount.Equal(decimal.RequireFromString("340.00")))
	}
}

// Con un reparto que no divide parejo, el resto de redondeo lo absorbe la
// última cuota y la suma sigue cerrando exacta.
func TestGenerate_RestoDeRedondeoEnUltimaCuota(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	plan := f.seedPlan(t, 3, 30, "0")
	f.seedMethod(t, "Efectivo", false)

	out, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, out[1].Amount.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, out[2].Amount.Equal(decimal.RequireFromString("33.34")))
	assert.True(t, sumAmounts(out).Equal(decimal.RequireFromString("100.00")))
}

// La primera cuota es un pago inmediato: completada y fechada ahora. Las
// demás nacen pendientes con vencimientos a fecha-factura + i × intervalo.
func TestGenerate_PrimeraCuotaCompletadaYVencimientos(t *testing.T) {
	f := newInstallmentFixture(t)
	invoiceDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inv := f.seedInvoice(t, invoiceDate)
	plan := f.seedPlan(t, 3, 15, "0")
	f.seedMethod(t, "Transferencia", true)

	out, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, entity.PaymentStatusCompleted, out[0].Status)
	assert.Equal(t, dto.FormatDate(time.Now()), out[0].Date, "la primera cuota se fecha hoy")

	assert.Equal(t, entity.PaymentStatusPending, out[1].Status)
	assert.Equal(t, dto.FormatDate(invoiceDate.AddDate(0, 0, 15)), out[1].Date)
	assert.Equal(t, entity.PaymentStatusPending, out[2].Status)
	assert.Equal(t, dto.FormatDate(invoiceDate.AddDate(0, 0, 30)), out[2].Date)

	// Numeración y referencia 1..n sobre el número de factura.
	for i, p := range out {
		assert.Equal(t, i+1, p.InstallmentNo)
	}
	assert.Equal(t, "FAC-TEST01-1/3", out[0].Reference)
	assert.Equal(t, "FAC-TEST01-3/3", out[2].Reference)
}

// Se prefiere el medio de pago marcado por defecto para facturas aunque no
// sea el primero registrado.
func TestGenerate_PrefiereMedioPorDefecto(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	plan := f.seedPlan(t, 2, 30, "0")
	f.seedMethod(t, "Efectivo", false)
	preferred := f.seedMethod(t, "Transferencia", true)

	out, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	for _, p := range out {
		assert.Equal(t, preferred.ID, p.PaymentMethodID)
	}
}

func TestGenerate_SinMedioPorDefecto_UsaElPrimero(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	plan := f.seedPlan(t, 2, 30, "0")
	first := f.seedMethod(t, "Efectivo", false)
	f.seedMethod(t, "Cheque", false)

	out, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	for _, p := range out {
		assert.Equal(t, first.ID, p.PaymentMethodID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_FacturaInexistente(t *testing.T) {
	f := newInstallmentFixture(t)
	plan := f.seedPlan(t, 2, 30, "0")
	f.seedMethod(t, "Efectivo", true)

	_, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     42,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, domain.ErrInstallmentGeneration)
}

func TestGenerate_PlanInexistente(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	f.seedMethod(t, "Efectivo", true)

	_, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: 42,
		Principal:     decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, domain.ErrInstallmentGeneration)
}

func TestGenerate_SinMediosDePago(t *testing.T) {
	f := newInstallmentFixture(t)
	inv := f.seedInvoice(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	plan := f.seedPlan(t, 2, 30, "0")

	_, err := f.uc.Generate(dto.CreateInstallmentsRequest{
		InvoiceID:     inv.ID,
		PaymentPlanID: plan.ID,
		Principal:     decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, domain.ErrInstallmentGeneration)

	// Sin efectos secundarios: no quedaron pagos a medias.
	leftovers, err := f.payments.List()
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
