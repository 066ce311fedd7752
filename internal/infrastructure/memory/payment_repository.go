package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var (
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
	_ repository.PaymentPlanRepository   = (*PaymentPlanRepo)(nil)
	_ repository.PaymentRepository       = (*PaymentRepo)(nil)
)

// PaymentMethodRepo implementación en memoria de PaymentMethodRepository.
type PaymentMethodRepo struct {
	col *collection[entity.PaymentMethod]
}

// NewPaymentMethodRepository construye el adaptador sobre el almacén compartido.
func NewPaymentMethodRepository(s *Store) *PaymentMethodRepo {
	return &PaymentMethodRepo{col: s.paymentMethods}
}

func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	*method = r.col.insert(func(id int64) entity.PaymentMethod {
		m := *method
		m.ID = id
		return m
	})
	return nil
}

func (r *PaymentMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	m, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	items := r.col.list()
	out := make([]*entity.PaymentMethod, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *PaymentMethodRepo) Update(method *entity.PaymentMethod) error {
	if !r.col.replace(method.ID, *method) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}

// PaymentPlanRepo implementación en memoria de PaymentPlanRepository.
type PaymentPlanRepo struct {
	col *collection[entity.PaymentPlan]
}

// NewPaymentPlanRepository construye el adaptador sobre el almacén compartido.
func NewPaymentPlanRepository(s *Store) *PaymentPlanRepo {
	return &PaymentPlanRepo{col: s.paymentPlans}
}

func (r *PaymentPlanRepo) Create(plan *entity.PaymentPlan) error {
	*plan = r.col.insert(func(id int64) entity.PaymentPlan {
		p := *plan
		p.ID = id
		return p
	})
	return nil
}

func (r *PaymentPlanRepo) GetByID(id int64) (*entity.PaymentPlan, error) {
	p, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentPlanRepo) List() ([]*entity.PaymentPlan, error) {
	items := r.col.list()
	out := make([]*entity.PaymentPlan, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *PaymentPlanRepo) Update(plan *entity.PaymentPlan) error {
	if !r.col.replace(plan.ID, *plan) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentPlanRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}

// PaymentRepo implementación en memoria de PaymentRepository.
type PaymentRepo struct {
	col *collection[entity.Payment]
}

// NewPaymentRepository construye el adaptador sobre el almacén compartido.
func NewPaymentRepository(s *Store) *PaymentRepo {
	return &PaymentRepo{col: s.payments}
}

func (r *PaymentRepo) Create(payment *entity.Payment) error {
	*payment = r.col.insert(func(id int64) entity.Payment {
		p := *payment
		p.ID = id
		return p
	})
	return nil
}

func (r *PaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	p, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	items := r.col.list()
	out := make([]*entity.Payment, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

// ListByInvoice devuelve los pagos aplicados a una factura, ordenados por id.
func (r *PaymentRepo) ListByInvoice(invoiceID int64) ([]*entity.Payment, error) {
	items := r.col.list()
	out := make([]*entity.Payment, 0, len(items))
	for i := range items {
		if items[i].InvoiceID == invoiceID {
			out = append(out, &items[i])
		}
	}
	return out, nil
}

func (r *PaymentRepo) Update(payment *entity.Payment) error {
	if !r.col.replace(payment.ID, *payment) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
