package billing_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/billing"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

func newInvoiceUseCase(t *testing.T) (*billing.InvoiceUseCase, *memory.InvoiceRepo, *memory.SettingsRepo) {
	t.Helper()
	store := memory.NewStore()
	invoices := memory.NewInvoiceRepository(store)
	settings := memory.NewSettingsRepository(store)
	return billing.NewInvoiceUseCase(invoices, settings), invoices, settings
}

func TestCreateWithItems_ForzaInvoiceIDYCalculaLineas(t *testing.T) {
	uc, invoices, _ := newInvoiceUseCase(t)

	out, err := uc.CreateWithItems(dto.CreateInvoiceRequest{
		Number:      "FAC-100",
		Date:        dto.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Direction:   entity.InvoiceDirectionIncome,
		Status:      entity.InvoiceStatusPending,
		TotalAmount: decimal.NewFromInt(238),
		Currency:    "COP",
		Items: []dto.InvoiceItemRequest{
			{Description: "Servicio", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(19)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	items, err := invoices.ListItemsByInvoice(out.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, out.ID, items[0].InvoiceID, "la línea queda ligada a la cabecera recién creada")
	// 2 × 100 = 200, más 19% = 238.00
	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("238.00")))
}

func TestCreateWithItems_DireccionInvalida(t *testing.T) {
	uc, _, _ := newInvoiceUseCase(t)
	_, err := uc.CreateWithItems(dto.CreateInvoiceRequest{Direction: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin número explícito se genera uno con el prefijo configurado en Settings;
// sin configuración rige el prefijo FAC.
func TestCreateWithItems_NumeroConPrefijoDeSettings(t *testing.T) {
	uc, _, settings := newInvoiceUseCase(t)
	require.NoError(t, settings.Save(&entity.Settings{InvoicePrefix: "MUH"}))

	out, err := uc.CreateWithItems(dto.CreateInvoiceRequest{
		Direction: entity.InvoiceDirectionExpense,
		Date:      dto.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Number, "MUH-"), "número generado: %s", out.Number)
	assert.Equal(t, entity.InvoiceStatusDraft, out.Status, "sin estado explícito la factura nace en borrador")
}

func TestUpdate_FusionParcialConservaCampos(t *testing.T) {
	uc, _, _ := newInvoiceUseCase(t)
	created, err := uc.CreateWithItems(dto.CreateInvoiceRequest{
		Number:    "FAC-200",
		Date:      dto.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Direction: entity.InvoiceDirectionIncome,
		Status:    entity.InvoiceStatusPending,
		Currency:  "COP",
		Notes:     "entrega parcial",
	})
	require.NoError(t, err)

	paid := entity.InvoiceStatusPaid
	out, err := uc.Update(created.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	assert.Equal(t, "FAC-200", out.Number, "los campos omitidos no se tocan")
	assert.Equal(t, "entrega parcial", out.Notes)
	assert.Equal(t, "COP", out.Currency)
}

func TestDeleteCascading_BorraCabeceraYLineas(t *testing.T) {
	uc, invoices, _ := newInvoiceUseCase(t)
	created, err := uc.CreateWithItems(dto.CreateInvoiceRequest{
		Direction: entity.InvoiceDirectionIncome,
		Date:      dto.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Items: []dto.InvoiceItemRequest{
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)

	deleted, err := uc.DeleteCascading(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	items, err := invoices.ListItems()
	require.NoError(t, err)
	assert.Empty(t, items, "las líneas caen junto con la cabecera")
}

func TestDeleteCascading_FacturaInexistente(t *testing.T) {
	uc, _, _ := newInvoiceUseCase(t)
	deleted, err := uc.DeleteCascading(7)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRecent_OrdenaPorFechaDescendenteYTrunca(t *testing.T) {
	uc, _, _ := newInvoiceUseCase(t)
	days := []int{5, 20, 10}
	for i, d := range days {
		_, err := uc.CreateWithItems(dto.CreateInvoiceRequest{
			Number:    "FAC-30" + string(rune('0'+i)),
			Date:      dto.NewDate(time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)),
			Direction: entity.InvoiceDirectionIncome,
		})
		require.NoError(t, err)
	}

	out, err := uc.Recent(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-06-20", out[0].Date)
	assert.Equal(t, "2024-06-10", out[1].Date)
}
