package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// TaxRepository define el puerto de persistencia para Tax.
type TaxRepository interface {
	Create(tax *entity.Tax) error
	GetByID(id int64) (*entity.Tax, error)
	List() ([]*entity.Tax, error)
	Update(tax *entity.Tax) error
	Delete(id int64) (bool, error)
}

// BankAccountRepository define el puerto de persistencia para BankAccount.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id int64) (*entity.BankAccount, error)
	List() ([]*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	Delete(id int64) (bool, error)
}
