package usecase

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// TaxUseCase casos de uso CRUD para impuestos.
type TaxUseCase struct {
	repo repository.TaxRepository
}

// NewTaxUseCase construye el caso de uso.
func NewTaxUseCase(repo repository.TaxRepository) *TaxUseCase {
	return &TaxUseCase{repo: repo}
}

// Create crea un nuevo impuesto.
func (uc *TaxUseCase) Create(in dto.CreateTaxRequest) (*dto.TaxResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tax := &entity.Tax{
		Name:        in.Name,
		Rate:        in.Rate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(tax); err != nil {
		return nil, err
	}
	return toTaxResponse(tax), nil
}

// GetByID obtiene un impuesto por id; (nil, nil) si no existe.
func (uc *TaxUseCase) GetByID(id int64) (*dto.TaxResponse, error) {
	tax, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, nil
	}
	return toTaxResponse(tax), nil
}

// List lista todos los impuestos.
func (uc *TaxUseCase) List() ([]dto.TaxResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaxResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTaxResponse(t))
	}
	return items, nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *TaxUseCase) Update(id int64, in dto.UpdateTaxRequest) (*dto.TaxResponse, error) {
	tax, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, nil
	}
	if in.Name != nil {
		tax.Name = *in.Name
	}
	if in.Rate != nil {
		tax.Rate = *in.Rate
	}
	if in.Description != nil {
		tax.Description = *in.Description
	}
	tax.UpdatedAt = time.Now()
	if err := uc.repo.Update(tax); err != nil {
		return nil, err
	}
	return toTaxResponse(tax), nil
}

// Delete elimina un impuesto; devuelve si existía.
func (uc *TaxUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toTaxResponse(t *entity.Tax) *dto.TaxResponse {
	if t == nil {
		return nil
	}
	return &dto.TaxResponse{
		ID:          t.ID,
		Name:        t.Name,
		Rate:        t.Rate,
		Description: t.Description,
	}
}

// BankAccountUseCase casos de uso CRUD para cuentas bancarias.
type BankAccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo}
}

// Create crea una nueva cuenta bancaria.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.BankAccount{
		Name:          in.Name,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		Currency:      in.Currency,
		Balance:       in.Balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// GetByID obtiene una cuenta por id; (nil, nil) si no existe.
func (uc *BankAccountUseCase) GetByID(id int64) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return toBankAccountResponse(account), nil
}

// List lista todas las cuentas bancarias.
func (uc *BankAccountUseCase) List() ([]dto.BankAccountResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toBankAccountResponse(a))
	}
	return items, nil
}

// Update fusiona los campos presentes sobre el registro almacenado.
func (uc *BankAccountUseCase) Update(id int64, in dto.UpdateBankAccountRequest) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.BankName != nil {
		account.BankName = *in.BankName
	}
	if in.AccountNumber != nil {
		account.AccountNumber = *in.AccountNumber
	}
	if in.Currency != nil {
		account.Currency = *in.Currency
	}
	if in.Balance != nil {
		account.Balance = *in.Balance
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// Delete elimina una cuenta; devuelve si existía.
func (uc *BankAccountUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toBankAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	if a == nil {
		return nil
	}
	return &dto.BankAccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Currency:      a.Currency,
		Balance:       a.Balance,
	}
}
