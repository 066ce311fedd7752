package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

func newScheduleUseCase(t *testing.T) *usecase.ScheduleUseCase {
	t.Helper()
	return usecase.NewScheduleUseCase(memory.NewPaymentScheduleRepository(memory.NewStore()))
}

func seedSchedule(t *testing.T, uc *usecase.ScheduleUseCase, desc string, due time.Time) *dto.ScheduleResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateScheduleRequest{
		Description: desc,
		Amount:      decimal.NewFromInt(100),
		DueDate:     dto.NewDate(due),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Próximos vencimientos
// ──────────────────────────────────────────────────────────────────────────────

// Un vencimiento pasado sin pagar NO aparece en próximos: el selector mira
// solo hacia adelante.
func TestUpcoming_VencidaNoPagadaQuedaFuera(t *testing.T) {
	uc := newScheduleUseCase(t)
	seedSchedule(t, uc, "vencida", time.Now().AddDate(0, 0, -10))
	seedSchedule(t, uc, "próxima", time.Now().AddDate(0, 0, 10))

	out, err := uc.Upcoming(5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "próxima", out[0].Description)
}

func TestUpcoming_OrdenaPorVencimientoYTrunca(t *testing.T) {
	uc := newScheduleUseCase(t)
	seedSchedule(t, uc, "lejana", time.Now().AddDate(0, 0, 30))
	seedSchedule(t, uc, "cercana", time.Now().AddDate(0, 0, 5))
	seedSchedule(t, uc, "media", time.Now().AddDate(0, 0, 15))

	out, err := uc.Upcoming(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "cercana", out[0].Description)
	assert.Equal(t, "media", out[1].Description)
}

func TestUpcoming_PagadasNoAparecen(t *testing.T) {
	uc := newScheduleUseCase(t)
	created := seedSchedule(t, uc, "por pagar", time.Now().AddDate(0, 0, 10))

	paid := true
	_, err := uc.Update(created.ID, dto.UpdateScheduleRequest{IsPaid: &paid})
	require.NoError(t, err)

	out, err := uc.Upcoming(5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transición de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MarcarPagadoFijaPaymentDate(t *testing.T) {
	uc := newScheduleUseCase(t)
	created := seedSchedule(t, uc, "servicios", time.Now().AddDate(0, 0, 7))
	assert.False(t, created.IsPaid)
	assert.Empty(t, created.PaymentDate)

	paid := true
	when := dto.NewDate(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	out, err := uc.Update(created.ID, dto.UpdateScheduleRequest{IsPaid: &paid, PaymentDate: &when})
	require.NoError(t, err)
	assert.True(t, out.IsPaid)
	assert.Equal(t, "2024-04-02", out.PaymentDate)
}

func TestUpdate_MarcarPagadoSinFechaUsaAhora(t *testing.T) {
	uc := newScheduleUseCase(t)
	created := seedSchedule(t, uc, "arriendo", time.Now().AddDate(0, 0, 7))

	paid := true
	out, err := uc.Update(created.ID, dto.UpdateScheduleRequest{IsPaid: &paid})
	require.NoError(t, err)
	assert.Equal(t, dto.FormatDate(time.Now()), out.PaymentDate)
}

// El flag es monótono: pagado no vuelve a pendiente.
func TestUpdate_DesPagarEsInvalido(t *testing.T) {
	uc := newScheduleUseCase(t)
	created := seedSchedule(t, uc, "nómina", time.Now().AddDate(0, 0, 7))

	paid := true
	_, err := uc.Update(created.ID, dto.UpdateScheduleRequest{IsPaid: &paid})
	require.NoError(t, err)

	unpaid := false
	_, err = uc.Update(created.ID, dto.UpdateScheduleRequest{IsPaid: &unpaid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RecurrenciaInvalida(t *testing.T) {
	uc := newScheduleUseCase(t)
	_, err := uc.Create(dto.CreateScheduleRequest{
		Description:      "suscripción",
		Amount:           decimal.NewFromInt(10),
		DueDate:          dto.NewDate(time.Now().AddDate(0, 0, 1)),
		IsRecurring:      true,
		RecurrencePeriod: "cada-luna-llena",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
