package memory

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var (
	_ repository.IncomeRepository  = (*IncomeRepo)(nil)
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
)

// inPeriod aplica el filtro inclusivo [start, end] sobre la fecha del registro.
func inPeriod(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// IncomeRepo implementación en memoria de IncomeRepository.
type IncomeRepo struct {
	col *collection[entity.Income]
}

// NewIncomeRepository construye el adaptador sobre el almacén compartido.
func NewIncomeRepository(s *Store) *IncomeRepo {
	return &IncomeRepo{col: s.incomes}
}

func (r *IncomeRepo) Create(income *entity.Income) error {
	*income = r.col.insert(func(id int64) entity.Income {
		in := *income
		in.ID = id
		return in
	})
	return nil
}

func (r *IncomeRepo) GetByID(id int64) (*entity.Income, error) {
	in, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &in, nil
}

func (r *IncomeRepo) List() ([]*entity.Income, error) {
	items := r.col.list()
	out := make([]*entity.Income, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

// ListByPeriod devuelve los ingresos con fecha dentro de [start, end].
func (r *IncomeRepo) ListByPeriod(start, end time.Time) ([]*entity.Income, error) {
	items := r.col.list()
	out := make([]*entity.Income, 0, len(items))
	for i := range items {
		if inPeriod(items[i].Date, start, end) {
			out = append(out, &items[i])
		}
	}
	return out, nil
}

func (r *IncomeRepo) Update(income *entity.Income) error {
	if !r.col.replace(income.ID, *income) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IncomeRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}

// ExpenseRepo implementación en memoria de ExpenseRepository.
type ExpenseRepo struct {
	col *collection[entity.Expense]
}

// NewExpenseRepository construye el adaptador sobre el almacén compartido.
func NewExpenseRepository(s *Store) *ExpenseRepo {
	return &ExpenseRepo{col: s.expenses}
}

func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	*expense = r.col.insert(func(id int64) entity.Expense {
		ex := *expense
		ex.ID = id
		return ex
	})
	return nil
}

func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	ex, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &ex, nil
}

func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	items := r.col.list()
	out := make([]*entity.Expense, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

// ListByPeriod devuelve los egresos con fecha dentro de [start, end].
func (r *ExpenseRepo) ListByPeriod(start, end time.Time) ([]*entity.Expense, error) {
	items := r.col.list()
	out := make([]*entity.Expense, 0, len(items))
	for i := range items {
		if inPeriod(items[i].Date, start, end) {
			out = append(out, &items[i])
		}
	}
	return out, nil
}

func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	if !r.col.replace(expense.ID, *expense) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
