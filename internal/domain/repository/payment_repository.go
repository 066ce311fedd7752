package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id int64) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
	Delete(id int64) (bool, error)
}

// PaymentPlanRepository define el puerto de persistencia para PaymentPlan.
type PaymentPlanRepository interface {
	Create(plan *entity.PaymentPlan) error
	GetByID(id int64) (*entity.PaymentPlan, error)
	List() ([]*entity.PaymentPlan, error)
	Update(plan *entity.PaymentPlan) error
	Delete(id int64) (bool, error)
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id int64) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByInvoice(invoiceID int64) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id int64) (bool, error)
}
