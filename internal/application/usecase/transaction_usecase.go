package usecase

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// IncomeUseCase casos de uso CRUD para ingresos, con filtro por período.
type IncomeUseCase struct {
	repo repository.IncomeRepository
}

// NewIncomeUseCase construye el caso de uso.
func NewIncomeUseCase(repo repository.IncomeRepository) *IncomeUseCase {
	return &IncomeUseCase{repo: repo}
}

// Create crea un nuevo ingreso.
func (uc *IncomeUseCase) Create(in dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	if in.Description == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	income := &entity.Income{
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date.Time,
		Category:    in.Category,
		Currency:    in.Currency,
		CustomerID:  in.CustomerID,
		InvoiceID:   in.InvoiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// GetByID obtiene un ingreso por id; (nil, nil) si no existe.
func (uc *IncomeUseCase) GetByID(id int64) (*dto.IncomeResponse, error) {
	income, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, nil
	}
	return toIncomeResponse(income), nil
}

// List lista todos los ingresos.
func (uc *IncomeUseCase) List() ([]dto.IncomeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toIncomeResponses(list), nil
}

// ListByPeriod lista los ingresos con fecha en [start, end] (inclusivo).
func (uc *IncomeUseCase) ListByPeriod(start, end time.Time) ([]dto.IncomeResponse, error) {
	list, err := uc.repo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return toIncomeResponses(list), nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *IncomeUseCase) Update(id int64, in dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	income, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, nil
	}
	if in.Description != nil {
		income.Description = *in.Description
	}
	if in.Amount != nil {
		income.Amount = *in.Amount
	}
	if in.Date != nil {
		income.Date = in.Date.Time
	}
	if in.Category != nil {
		income.Category = *in.Category
	}
	if in.Currency != nil {
		income.Currency = *in.Currency
	}
	if in.CustomerID != nil {
		income.CustomerID = *in.CustomerID
	}
	if in.InvoiceID != nil {
		income.InvoiceID = *in.InvoiceID
	}
	income.UpdatedAt = time.Now()
	if err := uc.repo.Update(income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// Delete elimina un ingreso; devuelve si existía.
func (uc *IncomeUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toIncomeResponse(in *entity.Income) *dto.IncomeResponse {
	if in == nil {
		return nil
	}
	return &dto.IncomeResponse{
		ID:          in.ID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        dto.FormatDate(in.Date),
		Category:    in.Category,
		Currency:    in.Currency,
		CustomerID:  in.CustomerID,
		InvoiceID:   in.InvoiceID,
	}
}

func toIncomeResponses(list []*entity.Income) []dto.IncomeResponse {
	items := make([]dto.IncomeResponse, 0, len(list))
	for _, in := range list {
		items = append(items, *toIncomeResponse(in))
	}
	return items
}

// ExpenseUseCase casos de uso CRUD para egresos, con filtro por período.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create crea un nuevo egreso.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	expense := &entity.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date.Time,
		Category:    in.Category,
		Currency:    in.Currency,
		SupplierID:  in.SupplierID,
		InvoiceID:   in.InvoiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un egreso por id; (nil, nil) si no existe.
func (uc *ExpenseUseCase) GetByID(id int64) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// List lista todos los egresos.
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(list), nil
}

// ListByPeriod lista los egresos con fecha en [start, end] (inclusivo).
func (uc *ExpenseUseCase) ListByPeriod(start, end time.Time) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(list), nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *ExpenseUseCase) Update(id int64, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.Date != nil {
		expense.Date = in.Date.Time
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Currency != nil {
		expense.Currency = *in.Currency
	}
	if in.SupplierID != nil {
		expense.SupplierID = *in.SupplierID
	}
	if in.InvoiceID != nil {
		expense.InvoiceID = *in.InvoiceID
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un egreso; devuelve si existía.
func (uc *ExpenseUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toExpenseResponse(ex *entity.Expense) *dto.ExpenseResponse {
	if ex == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          ex.ID,
		Description: ex.Description,
		Amount:      ex.Amount,
		Date:        dto.FormatDate(ex.Date),
		Category:    ex.Category,
		Currency:    ex.Currency,
		SupplierID:  ex.SupplierID,
		InvoiceID:   ex.InvoiceID,
	}
}

func toExpenseResponses(list []*entity.Expense) []dto.ExpenseResponse {
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, ex := range list {
		items = append(items, *toExpenseResponse(ex))
	}
	return items
}
