// Package billing contiene los casos de uso de facturación: operaciones
// compuestas factura+líneas, pagos y el generador de cuotas.
package billing

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

const defaultInvoicePrefix = "FAC"

// InvoiceUseCase operaciones compuestas sobre facturas y sus líneas: creación
// cabecera+líneas, lectura conjunta y borrado en cascada.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, settingsRepo repository.SettingsRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, settingsRepo: settingsRepo}
}

// CreateWithItems crea la cabecera (que recibe su id primero) y después cada
// línea con InvoiceID forzado a ese id, ignorando cualquier id que trajera el
// payload. Las líneas se consultan por separado.
func (uc *InvoiceUseCase) CreateWithItems(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Direction != entity.InvoiceDirectionIncome && in.Direction != entity.InvoiceDirectionExpense {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	number := in.Number
	if number == "" {
		number = uc.nextNumber()
	}
	now := time.Now()
	invoice := &entity.Invoice{
		Number:      number,
		Date:        in.Date.Time,
		DueDate:     in.DueDate.Time,
		CustomerID:  in.CustomerID,
		SupplierID:  in.SupplierID,
		Direction:   in.Direction,
		Status:      status,
		TotalAmount: in.TotalAmount,
		TaxAmount:   in.TaxAmount,
		Currency:    in.Currency,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	for _, it := range in.Items {
		item := &entity.InvoiceItem{
			InvoiceID:   invoice.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			LineTotal:   lineTotal(it.Quantity, it.UnitPrice, it.TaxRate),
		}
		if err := uc.invoiceRepo.CreateItem(item); err != nil {
			return nil, err
		}
	}
	return toInvoiceResponse(invoice), nil
}

// lineTotal calcula cantidad × precio unitario más el impuesto de la línea,
// redondeado a centavos.
func lineTotal(qty, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	subtotal := qty.Mul(unitPrice)
	tax := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	return subtotal.Add(tax).Round(2)
}

// nextNumber genera un número de factura: prefijo configurado (o FAC) más un
// sufijo aleatorio corto.
func (uc *InvoiceUseCase) nextNumber() string {
	prefix := defaultInvoicePrefix
	if settings, err := uc.settingsRepo.Get(); err == nil && settings != nil && settings.InvoicePrefix != "" {
		prefix = settings.InvoicePrefix
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return prefix + "-" + suffix
}

// GetByID obtiene solo la cabecera; (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetByID(id int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// GetWithItems obtiene la factura con sus líneas; (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetWithItems(id int64) (*dto.InvoiceWithItemsResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	items, err := uc.invoiceRepo.ListItemsByInvoice(id)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceWithItemsResponse{
		Invoice: *toInvoiceResponse(invoice),
		Items:   make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, *toInvoiceItemResponse(it))
	}
	return out, nil
}

// List lista todas las cabeceras.
func (uc *InvoiceUseCase) List() ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return items, nil
}

// Recent devuelve las facturas más recientes por fecha de emisión descendente,
// truncadas a limit.
func (uc *InvoiceUseCase) Recent(limit int) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return items, nil
}

// Update fusiona los campos presentes sobre la cabecera almacenada. Las líneas
// no se tocan por esta vía.
func (uc *InvoiceUseCase) Update(id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.Number != nil {
		invoice.Number = *in.Number
	}
	if in.Date != nil {
		invoice.Date = in.Date.Time
	}
	if in.DueDate != nil {
		invoice.DueDate = in.DueDate.Time
	}
	if in.CustomerID != nil {
		invoice.CustomerID = *in.CustomerID
	}
	if in.SupplierID != nil {
		invoice.SupplierID = *in.SupplierID
	}
	if in.Status != nil {
		invoice.Status = *in.Status
	}
	if in.TotalAmount != nil {
		invoice.TotalAmount = *in.TotalAmount
	}
	if in.TaxAmount != nil {
		invoice.TaxAmount = *in.TaxAmount
	}
	if in.Currency != nil {
		invoice.Currency = *in.Currency
	}
	if in.Notes != nil {
		invoice.Notes = *in.Notes
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// DeleteCascading borra primero todas las líneas de la factura y después la
// cabecera. Si el id no existe devuelve false sin efectos secundarios.
func (uc *InvoiceUseCase) DeleteCascading(id int64) (bool, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if invoice == nil {
		return false, nil
	}
	if _, err := uc.invoiceRepo.DeleteItemsByInvoice(id); err != nil {
		return false, err
	}
	return uc.invoiceRepo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Date:        dto.FormatDate(inv.Date),
		DueDate:     dto.FormatDate(inv.DueDate),
		CustomerID:  inv.CustomerID,
		SupplierID:  inv.SupplierID,
		Direction:   inv.Direction,
		Status:      inv.Status,
		TotalAmount: inv.TotalAmount,
		TaxAmount:   inv.TaxAmount,
		Currency:    inv.Currency,
		Notes:       inv.Notes,
	}
}

func toInvoiceItemResponse(it *entity.InvoiceItem) *dto.InvoiceItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InvoiceItemResponse{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		ProductID:   it.ProductID,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TaxRate:     it.TaxRate,
		LineTotal:   it.LineTotal,
	}
}
