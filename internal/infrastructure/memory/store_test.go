package memory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// CRUD básico
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_CicloCRUD(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.NewStore())

	customer := &entity.Customer{Name: "Acme SAS", TaxNumber: "900123456"}
	require.NoError(t, repo.Create(customer))
	assert.Equal(t, int64(1), customer.ID, "el primer id asignado debe ser 1")

	got, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme SAS", got.Name)

	got.Email = "contacto@acme.co"
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacto@acme.co", updated.Email)
	assert.Equal(t, "Acme SAS", updated.Name, "los campos no tocados se conservan")

	deleted, err := repo.Delete(customer.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "tras borrar, GetByID devuelve (nil, nil)")
}

func TestCustomerRepo_DeleteInexistente_DevuelveFalse(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.NewStore())
	deleted, err := repo.Delete(99)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contadores de id
// ──────────────────────────────────────────────────────────────────────────────

// Los ids son monótonos por tipo y nunca se reutilizan, ni siquiera después
// de borrar el registro que los recibió.
func TestIDs_MonotonosSinReutilizar(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())

	for i := 1; i <= 3; i++ {
		p := &entity.Product{Name: fmt.Sprintf("Producto %d", i), SKU: fmt.Sprintf("SKU-%d", i)}
		require.NoError(t, repo.Create(p))
		assert.Equal(t, int64(i), p.ID)
	}

	deleted, err := repo.Delete(2)
	require.NoError(t, err)
	require.True(t, deleted)

	next := &entity.Product{Name: "Producto 4", SKU: "SKU-4"}
	require.NoError(t, repo.Create(next))
	assert.Equal(t, int64(4), next.ID, "el id 2 borrado no se reutiliza")
}

// Cada tipo lleva su propio contador: crear clientes no mueve el contador de
// proveedores.
func TestIDs_ContadoresIndependientesPorTipo(t *testing.T) {
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	suppliers := memory.NewSupplierRepository(store)

	c := &entity.Customer{Name: "Cliente"}
	require.NoError(t, customers.Create(c))
	require.NoError(t, customers.Create(&entity.Customer{Name: "Otro"}))

	s := &entity.Supplier{Name: "Proveedor"}
	require.NoError(t, suppliers.Create(s))
	assert.Equal(t, int64(1), s.ID)
}

func TestIDs_InsercionesConcurrentesSonUnicas(t *testing.T) {
	const n = 100
	repo := memory.NewCustomerRepository(memory.NewStore())

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := &entity.Customer{Name: fmt.Sprintf("Cliente %d", i)}
			if err := repo.Create(c); err == nil {
				ids <- c.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d repetido", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceRepo_LineasPorFactura(t *testing.T) {
	repo := memory.NewInvoiceRepository(memory.NewStore())

	inv := &entity.Invoice{Number: "FAC-001", Direction: entity.InvoiceDirectionIncome, Status: entity.InvoiceStatusDraft}
	require.NoError(t, repo.Create(inv))
	other := &entity.Invoice{Number: "FAC-002", Direction: entity.InvoiceDirectionIncome, Status: entity.InvoiceStatusDraft}
	require.NoError(t, repo.Create(other))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateItem(&entity.InvoiceItem{
			InvoiceID: inv.ID,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(100),
		}))
	}
	require.NoError(t, repo.CreateItem(&entity.InvoiceItem{InvoiceID: other.ID, Quantity: decimal.NewFromInt(2)}))

	items, err := repo.ListItemsByInvoice(inv.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	n, err := repo.DeleteItemsByInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "la cascada borra exactamente las líneas de esa factura")

	remaining, err := repo.ListItems()
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "las líneas de otras facturas no se tocan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Período de transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestIncomeRepo_ListByPeriod_LimitesInclusivos(t *testing.T) {
	repo := memory.NewIncomeRepository(memory.NewStore())

	day := func(d int) time.Time { return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC) }
	for _, d := range []int{9, 10, 15, 20, 21} {
		require.NoError(t, repo.Create(&entity.Income{
			Description: fmt.Sprintf("ingreso día %d", d),
			Amount:      decimal.NewFromInt(int64(d)),
			Date:        day(d),
		}))
	}

	list, err := repo.ListByPeriod(day(10), day(20))
	require.NoError(t, err)
	require.Len(t, list, 3, "los límites del período son inclusivos")
	assert.Equal(t, "ingreso día 10", list[0].Description)
	assert.Equal(t, "ingreso día 20", list[2].Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings singleton
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingsRepo_SingletonPerezoso(t *testing.T) {
	repo := memory.NewSettingsRepository(memory.NewStore())

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, got, "sin Save previo no hay configuración")

	require.NoError(t, repo.Save(&entity.Settings{CompanyName: "Mi Empresa", Currency: "COP"}))

	got, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Mi Empresa", got.CompanyName)

	// Mutar la copia devuelta no afecta el estado interno.
	got.CompanyName = "Otra"
	again, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Mi Empresa", again.CompanyName)
}
