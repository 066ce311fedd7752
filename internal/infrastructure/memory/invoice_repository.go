package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
// Cabecera y líneas viven en colecciones separadas con contadores propios;
// la cascada (borrar líneas al borrar la cabecera) la orquesta el caso de uso.
type InvoiceRepo struct {
	invoices *collection[entity.Invoice]
	items    *collection[entity.InvoiceItem]
}

// NewInvoiceRepository construye el adaptador sobre el almacén compartido.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{invoices: s.invoices, items: s.invoiceItems}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	*invoice = r.invoices.insert(func(id int64) entity.Invoice {
		inv := *invoice
		inv.ID = id
		return inv
	})
	return nil
}

func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := r.invoices.get(id)
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	items := r.invoices.list()
	out := make([]*entity.Invoice, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	if !r.invoices.replace(invoice.ID, *invoice) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) Delete(id int64) (bool, error) {
	return r.invoices.remove(id), nil
}

// CreateItem guarda una línea tal cual llega; el caso de uso ya forzó InvoiceID.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	*item = r.items.insert(func(id int64) entity.InvoiceItem {
		it := *item
		it.ID = id
		return it
	})
	return nil
}

func (r *InvoiceRepo) GetItemByID(id int64) (*entity.InvoiceItem, error) {
	it, ok := r.items.get(id)
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *InvoiceRepo) ListItems() ([]*entity.InvoiceItem, error) {
	items := r.items.list()
	out := make([]*entity.InvoiceItem, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

// ListItemsByInvoice devuelve las líneas de la factura ordenadas por id.
func (r *InvoiceRepo) ListItemsByInvoice(invoiceID int64) ([]*entity.InvoiceItem, error) {
	items := r.items.list()
	out := make([]*entity.InvoiceItem, 0, len(items))
	for i := range items {
		if items[i].InvoiceID == invoiceID {
			out = append(out, &items[i])
		}
	}
	return out, nil
}

func (r *InvoiceRepo) UpdateItem(item *entity.InvoiceItem) error {
	if !r.items.replace(item.ID, *item) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) DeleteItem(id int64) (bool, error) {
	return r.items.remove(id), nil
}

// DeleteItemsByInvoice borra todas las líneas de la factura.
func (r *InvoiceRepo) DeleteItemsByInvoice(invoiceID int64) (int, error) {
	n := r.items.removeWhere(func(it entity.InvoiceItem) bool {
		return it.InvoiceID == invoiceID
	})
	return n, nil
}
