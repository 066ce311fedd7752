package usecase

import (
	"sort"
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// ScheduleUseCase casos de uso para pagos programados: CRUD, la transición de
// pago (monótona) y el selector de próximos vencimientos.
type ScheduleUseCase struct {
	repo repository.PaymentScheduleRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.PaymentScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

func validRecurrence(period string) bool {
	switch period {
	case entity.RecurrenceWeekly, entity.RecurrenceMonthly, entity.RecurrenceQuarterly, entity.RecurrenceYearly:
		return true
	}
	return false
}

// Create crea un pago programado (siempre nace sin pagar).
func (uc *ScheduleUseCase) Create(in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if in.Description == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.IsRecurring && !validRecurrence(in.RecurrencePeriod) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	schedule := &entity.PaymentSchedule{
		Description:      in.Description,
		Amount:           in.Amount,
		DueDate:          in.DueDate.Time,
		IsPaid:           false,
		Category:         in.Category,
		Currency:         in.Currency,
		IsRecurring:      in.IsRecurring,
		RecurrencePeriod: in.RecurrencePeriod,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// GetByID obtiene un pago programado por id; (nil, nil) si no existe.
func (uc *ScheduleUseCase) GetByID(id int64) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	return toScheduleResponse(schedule), nil
}

// List lista todos los pagos programados.
func (uc *ScheduleUseCase) List() ([]dto.ScheduleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toScheduleResponse(s))
	}
	return items, nil
}

// Upcoming devuelve los pagos sin pagar que vencen hoy o después, ordenados
// por vencimiento ascendente y truncados a limit. Los vencidos sin pagar
// quedan deliberadamente fuera: "próximos" mira solo hacia adelante.
func (uc *ScheduleUseCase) Upcoming(limit int) ([]dto.ScheduleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	upcoming := make([]*entity.PaymentSchedule, 0, len(list))
	for _, s := range list {
		if !s.IsPaid && !s.DueDate.Before(now) {
			upcoming = append(upcoming, s)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	items := make([]dto.ScheduleResponse, 0, len(upcoming))
	for _, s := range upcoming {
		items = append(items, *toScheduleResponse(s))
	}
	return items, nil
}

// Update fusiona los campos presentes. IsPaid es monótono: solo se acepta la
// transición false→true, y al marcarse pagado se fija PaymentDate (el enviado
// o, en su defecto, ahora).
func (uc *ScheduleUseCase) Update(id int64, in dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	if in.Description != nil {
		schedule.Description = *in.Description
	}
	if in.Amount != nil {
		schedule.Amount = *in.Amount
	}
	if in.DueDate != nil {
		schedule.DueDate = in.DueDate.Time
	}
	if in.Category != nil {
		schedule.Category = *in.Category
	}
	if in.Currency != nil {
		schedule.Currency = *in.Currency
	}
	if in.IsRecurring != nil {
		schedule.IsRecurring = *in.IsRecurring
	}
	if in.RecurrencePeriod != nil {
		if *in.RecurrencePeriod != "" && !validRecurrence(*in.RecurrencePeriod) {
			return nil, domain.ErrInvalidInput
		}
		schedule.RecurrencePeriod = *in.RecurrencePeriod
	}
	if in.IsPaid != nil {
		if schedule.IsPaid && !*in.IsPaid {
			// Des-pagar no existe: el flag solo avanza.
			return nil, domain.ErrInvalidInput
		}
		if !schedule.IsPaid && *in.IsPaid {
			schedule.IsPaid = true
			paidAt := time.Now()
			if in.PaymentDate != nil && !in.PaymentDate.IsZero() {
				paidAt = in.PaymentDate.Time
			}
			schedule.PaymentDate = &paidAt
		}
	}
	schedule.UpdatedAt = time.Now()
	if err := uc.repo.Update(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// Delete elimina un pago programado; devuelve si existía.
func (uc *ScheduleUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toScheduleResponse(s *entity.PaymentSchedule) *dto.ScheduleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.ScheduleResponse{
		ID:               s.ID,
		Description:      s.Description,
		Amount:           s.Amount,
		DueDate:          dto.FormatDate(s.DueDate),
		IsPaid:           s.IsPaid,
		Category:         s.Category,
		Currency:         s.Currency,
		IsRecurring:      s.IsRecurring,
		RecurrencePeriod: s.RecurrencePeriod,
	}
	if s.PaymentDate != nil {
		resp.PaymentDate = dto.FormatDate(*s.PaymentDate)
	}
	return resp
}
