package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/usecase"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

func newProductUseCase(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	return usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
}

func seedProduct(t *testing.T, uc *usecase.ProductUseCase, sku string, stock, alert int64) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:           "Producto " + sku,
		SKU:            sku,
		StockQuantity:  decimal.NewFromInt(stock),
		AlertThreshold: decimal.NewFromInt(alert),
	})
	require.NoError(t, err)
	return out
}

// Sin override cada producto compara contra su propio umbral de alerta.
func TestLowStock_UmbralPorProducto(t *testing.T) {
	uc := newProductUseCase(t)
	seedProduct(t, uc, "A", 2, 3)  // 2 <= 3 → bajo
	seedProduct(t, uc, "B", 10, 3) // 10 > 3 → ok
	seedProduct(t, uc, "C", 5, 5)  // igual al umbral → bajo

	out, err := uc.LowStock(nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].SKU)
	assert.Equal(t, "C", out[1].SKU)
}

// Con override el umbral global desplaza los umbrales individuales.
func TestLowStock_OverrideGlobal(t *testing.T) {
	uc := newProductUseCase(t)
	seedProduct(t, uc, "A", 2, 3)
	seedProduct(t, uc, "B", 10, 3)

	threshold := decimal.NewFromInt(1)
	out, err := uc.LowStock(&threshold)
	require.NoError(t, err)
	assert.Empty(t, out, "con umbral 1 ni el stock 2 califica, aunque su alerta propia sea 3")

	threshold = decimal.NewFromInt(10)
	out, err = uc.LowStock(&threshold)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// La fusión parcial solo toca los campos presentes.
func TestUpdate_FusionParcial(t *testing.T) {
	uc := newProductUseCase(t)
	created := seedProduct(t, uc, "A", 7, 3)

	newStock := decimal.NewFromInt(1)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{StockQuantity: &newStock})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.StockQuantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "Producto A", out.Name, "los campos omitidos se conservan")
	assert.True(t, out.AlertThreshold.Equal(decimal.NewFromInt(3)))
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := newProductUseCase(t)
	name := "x"
	out, err := uc.Update(99, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}
