package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// InstallmentUseCase genera la secuencia de cuotas de una factura a partir de
// un plan de pago y un principal.
//
// Invariante: la suma de las cuotas es exactamente
// principal × (1 + fee/100) redondeado a centavos; el resto de redondeo lo
// absorbe la última cuota.
type InstallmentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	planRepo    repository.PaymentPlanRepository
	methodRepo  repository.PaymentMethodRepository
	paymentRepo repository.PaymentRepository
}

// NewInstallmentUseCase construye el caso de uso.
func NewInstallmentUseCase(
	invoiceRepo repository.InvoiceRepository,
	planRepo repository.PaymentPlanRepository,
	methodRepo repository.PaymentMethodRepository,
	paymentRepo repository.PaymentRepository,
) *InstallmentUseCase {
	return &InstallmentUseCase{
		invoiceRepo: invoiceRepo,
		planRepo:    planRepo,
		methodRepo:  methodRepo,
		paymentRepo: paymentRepo,
	}
}

// Generate crea las cuotas de la factura indicada. Precondiciones: la factura
// y el plan deben existir y debe haber al menos un medio de pago registrado
// (se prefiere el marcado por defecto para facturas, si no el primero).
// Cualquier precondición incumplida devuelve domain.ErrInstallmentGeneration
// envuelto con la causa.
//
// La primera cuota representa un pago inmediato: se crea completada y con
// fecha "ahora" en lugar del vencimiento calculado. Las demás quedan
// pendientes con vencimiento fecha-factura + i × intervalo.
func (uc *InstallmentUseCase) Generate(in dto.CreateInstallmentsRequest) ([]dto.PaymentResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: la factura %d no existe", domain.ErrInstallmentGeneration, in.InvoiceID)
	}
	plan, err := uc.planRepo.GetByID(in.PaymentPlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: el plan de pago %d no existe", domain.ErrInstallmentGeneration, in.PaymentPlanID)
	}
	if plan.InstallmentCount < 1 {
		return nil, fmt.Errorf("%w: el plan %d no define cuotas", domain.ErrInstallmentGeneration, plan.ID)
	}
	method, err := uc.pickMethod()
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	total := in.Principal.Mul(decimal.NewFromInt(1).Add(plan.FeePercentage.Div(hundred))).Round(2)
	count := int64(plan.InstallmentCount)
	installment := total.Div(decimal.NewFromInt(count)).Round(2)
	// La última cuota cierra la suma exacta pese al redondeo.
	last := total.Sub(installment.Mul(decimal.NewFromInt(count - 1)))

	now := time.Now()
	payments := make([]dto.PaymentResponse, 0, plan.InstallmentCount)
	for i := 0; i < plan.InstallmentCount; i++ {
		amount := installment
		if i == plan.InstallmentCount-1 {
			amount = last
		}
		date := invoice.Date.AddDate(0, 0, i*plan.IntervalDays)
		status := entity.PaymentStatusPending
		if i == 0 {
			// Pago inmediato: completado y fechado ahora.
			status = entity.PaymentStatusCompleted
			date = now
		}
		payment := &entity.Payment{
			InvoiceID:       invoice.ID,
			Amount:          amount,
			Date:            date,
			PaymentMethodID: method.ID,
			Status:          status,
			PaymentPlanID:   plan.ID,
			InstallmentNo:   i + 1,
			Reference:       fmt.Sprintf("%s-%d/%d", invoice.Number, i+1, plan.InstallmentCount),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.paymentRepo.Create(payment); err != nil {
			return nil, err
		}
		payments = append(payments, *toPaymentResponse(payment))
	}
	return payments, nil
}

// pickMethod elige el medio de pago marcado por defecto para facturas; si no
// hay ninguno marcado, el primero disponible. Sin medios de pago no se puede
// generar nada.
func (uc *InstallmentUseCase) pickMethod() (*entity.PaymentMethod, error) {
	methods, err := uc.methodRepo.List()
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: no hay medios de pago registrados", domain.ErrInstallmentGeneration)
	}
	for _, m := range methods {
		if m.IsDefaultForInvoices {
			return m, nil
		}
	}
	return methods[0], nil
}
