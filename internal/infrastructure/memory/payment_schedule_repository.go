package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.PaymentScheduleRepository = (*PaymentScheduleRepo)(nil)

// PaymentScheduleRepo implementación en memoria de PaymentScheduleRepository.
type PaymentScheduleRepo struct {
	col *collection[entity.PaymentSchedule]
}

// NewPaymentScheduleRepository construye el adaptador sobre el almacén compartido.
func NewPaymentScheduleRepository(s *Store) *PaymentScheduleRepo {
	return &PaymentScheduleRepo{col: s.schedules}
}

func (r *PaymentScheduleRepo) Create(schedule *entity.PaymentSchedule) error {
	*schedule = r.col.insert(func(id int64) entity.PaymentSchedule {
		sch := *schedule
		sch.ID = id
		return sch
	})
	return nil
}

func (r *PaymentScheduleRepo) GetByID(id int64) (*entity.PaymentSchedule, error) {
	sch, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &sch, nil
}

func (r *PaymentScheduleRepo) List() ([]*entity.PaymentSchedule, error) {
	items := r.col.list()
	out := make([]*entity.PaymentSchedule, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *PaymentScheduleRepo) Update(schedule *entity.PaymentSchedule) error {
	if !r.col.replace(schedule.ID, *schedule) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentScheduleRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
