package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// El puerto no valida referencias cruzadas: el caso de uso compone la creación
// cabecera+líneas y el borrado en cascada.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id int64) (bool, error)

	CreateItem(item *entity.InvoiceItem) error
	GetItemByID(id int64) (*entity.InvoiceItem, error)
	ListItems() ([]*entity.InvoiceItem, error)
	ListItemsByInvoice(invoiceID int64) ([]*entity.InvoiceItem, error)
	UpdateItem(item *entity.InvoiceItem) error
	DeleteItem(id int64) (bool, error)
	// DeleteItemsByInvoice borra todas las líneas de la factura y devuelve cuántas eliminó.
	DeleteItemsByInvoice(invoiceID int64) (int, error)
}
