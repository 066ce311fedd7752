package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// PaymentScheduleRepository define el puerto de persistencia para PaymentSchedule.
type PaymentScheduleRepository interface {
	Create(schedule *entity.PaymentSchedule) error
	GetByID(id int64) (*entity.PaymentSchedule, error)
	List() ([]*entity.PaymentSchedule, error)
	Update(schedule *entity.PaymentSchedule) error
	Delete(id int64) (bool, error)
}
