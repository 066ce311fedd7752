package billing

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso CRUD para medios de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create crea un medio de pago.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		Name:                 in.Name,
		Type:                 in.Type,
		IsDefaultForInvoices: in.IsDefaultForInvoices,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// GetByID obtiene un medio de pago por id; (nil, nil) si no existe.
func (uc *PaymentMethodUseCase) GetByID(id int64) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	return toPaymentMethodResponse(method), nil
}

// List lista todos los medios de pago.
func (uc *PaymentMethodUseCase) List() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toPaymentMethodResponse(m))
	}
	return items, nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *PaymentMethodUseCase) Update(id int64, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	if in.Name != nil {
		method.Name = *in.Name
	}
	if in.Type != nil {
		method.Type = *in.Type
	}
	if in.IsDefaultForInvoices != nil {
		method.IsDefaultForInvoices = *in.IsDefaultForInvoices
	}
	method.UpdatedAt = time.Now()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Delete elimina un medio de pago; devuelve si existía.
func (uc *PaymentMethodUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if m == nil {
		return nil
	}
	return &dto.PaymentMethodResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		Type:                 m.Type,
		IsDefaultForInvoices: m.IsDefaultForInvoices,
	}
}

// PaymentPlanUseCase casos de uso CRUD para planes de cuotas.
type PaymentPlanUseCase struct {
	repo repository.PaymentPlanRepository
}

// NewPaymentPlanUseCase construye el caso de uso.
func NewPaymentPlanUseCase(repo repository.PaymentPlanRepository) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{repo: repo}
}

// Create crea un plan de cuotas. Exige al menos una cuota.
func (uc *PaymentPlanUseCase) Create(in dto.CreatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	if in.Name == "" || in.InstallmentCount < 1 || in.IntervalDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plan := &entity.PaymentPlan{
		Name:             in.Name,
		InstallmentCount: in.InstallmentCount,
		IntervalDays:     in.IntervalDays,
		FeePercentage:    in.FeePercentage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPaymentPlanResponse(plan), nil
}

// GetByID obtiene un plan por id; (nil, nil) si no existe.
func (uc *PaymentPlanUseCase) GetByID(id int64) (*dto.PaymentPlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return toPaymentPlanResponse(plan), nil
}

// List lista todos los planes.
func (uc *PaymentPlanUseCase) List() ([]dto.PaymentPlanResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentPlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentPlanResponse(p))
	}
	return items, nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *PaymentPlanUseCase) Update(id int64, in dto.UpdatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.InstallmentCount != nil {
		if *in.InstallmentCount < 1 {
			return nil, domain.ErrInvalidInput
		}
		plan.InstallmentCount = *in.InstallmentCount
	}
	if in.IntervalDays != nil {
		if *in.IntervalDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		plan.IntervalDays = *in.IntervalDays
	}
	if in.FeePercentage != nil {
		plan.FeePercentage = *in.FeePercentage
	}
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPaymentPlanResponse(plan), nil
}

// Delete elimina un plan; devuelve si existía.
func (uc *PaymentPlanUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toPaymentPlanResponse(p *entity.PaymentPlan) *dto.PaymentPlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentPlanResponse{
		ID:               p.ID,
		Name:             p.Name,
		InstallmentCount: p.InstallmentCount,
		IntervalDays:     p.IntervalDays,
		FeePercentage:    p.FeePercentage,
	}
}

// PaymentUseCase casos de uso CRUD para pagos sueltos sobre facturas.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create registra un pago sobre una factura. El llamador es responsable de
// que invoice_id sea válido (el almacén no valida referencias cruzadas).
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}
	now := time.Now()
	payment := &entity.Payment{
		InvoiceID:       in.InvoiceID,
		Amount:          in.Amount,
		Date:            in.Date.Time,
		PaymentMethodID: in.PaymentMethodID,
		Status:          status,
		Reference:       in.Reference,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago por id; (nil, nil) si no existe.
func (uc *PaymentUseCase) GetByID(id int64) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// List lista todos los pagos.
func (uc *PaymentUseCase) List() ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListByInvoice lista los pagos aplicados a una factura.
func (uc *PaymentUseCase) ListByInvoice(invoiceID int64) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *PaymentUseCase) Update(id int64, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	if in.Amount != nil {
		payment.Amount = *in.Amount
	}
	if in.Date != nil {
		payment.Date = in.Date.Time
	}
	if in.PaymentMethodID != nil {
		payment.PaymentMethodID = *in.PaymentMethodID
	}
	if in.Status != nil {
		payment.Status = *in.Status
	}
	if in.Reference != nil {
		payment.Reference = *in.Reference
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	payment.UpdatedAt = time.Now()
	if err := uc.repo.Update(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina un pago; devuelve si existía.
func (uc *PaymentUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:              p.ID,
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
		Date:            dto.FormatDate(p.Date),
		PaymentMethodID: p.PaymentMethodID,
		Status:          p.Status,
		PaymentPlanID:   p.PaymentPlanID,
		InstallmentNo:   p.InstallmentNo,
		Reference:       p.Reference,
		Notes:           p.Notes,
	}
}

func toPaymentResponses(list []*entity.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items
}
