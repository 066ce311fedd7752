package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var (
	_ repository.TaxRepository         = (*TaxRepo)(nil)
	_ repository.BankAccountRepository = (*BankAccountRepo)(nil)
)

// TaxRepo implementación en memoria de TaxRepository.
type TaxRepo struct {
	col *collection[entity.Tax]
}

// NewTaxRepository construye el adaptador sobre el almacén compartido.
func NewTaxRepository(s *Store) *TaxRepo {
	return &TaxRepo{col: s.taxes}
}

func (r *TaxRepo) Create(tax *entity.Tax) error {
	*tax = r.col.insert(func(id int64) entity.Tax {
		t := *tax
		t.ID = id
		return t
	})
	return nil
}

func (r *TaxRepo) GetByID(id int64) (*entity.Tax, error) {
	t, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TaxRepo) List() ([]*entity.Tax, error) {
	items := r.col.list()
	out := make([]*entity.Tax, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *TaxRepo) Update(tax *entity.Tax) error {
	if !r.col.replace(tax.ID, *tax) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaxRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}

// BankAccountRepo implementación en memoria de BankAccountRepository.
type BankAccountRepo struct {
	col *collection[entity.BankAccount]
}

// NewBankAccountRepository construye el adaptador sobre el almacén compartido.
func NewBankAccountRepository(s *Store) *BankAccountRepo {
	return &BankAccountRepo{col: s.bankAccounts}
}

func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	*account = r.col.insert(func(id int64) entity.BankAccount {
		a := *account
		a.ID = id
		return a
	})
	return nil
}

func (r *BankAccountRepo) GetByID(id int64) (*entity.BankAccount, error) {
	a, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *BankAccountRepo) List() ([]*entity.BankAccount, error) {
	items := r.col.list()
	out := make([]*entity.BankAccount, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *BankAccountRepo) Update(account *entity.BankAccount) error {
	if !r.col.replace(account.ID, *account) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BankAccountRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
