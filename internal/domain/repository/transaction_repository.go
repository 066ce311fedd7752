package repository

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
)

// IncomeRepository define el puerto de persistencia para Income.
// ListByPeriod filtra por fecha con límites inclusivos [start, end].
type IncomeRepository interface {
	Create(income *entity.Income) error
	GetByID(id int64) (*entity.Income, error)
	List() ([]*entity.Income, error)
	ListByPeriod(start, end time.Time) ([]*entity.Income, error)
	Update(income *entity.Income) error
	Delete(id int64) (bool, error)
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id int64) (*entity.Expense, error)
	List() ([]*entity.Expense, error)
	ListByPeriod(start, end time.Time) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id int64) (bool, error)
}
