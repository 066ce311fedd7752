package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// El filtro de stock bajo vive en el caso de uso; el puerto solo lista.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) (bool, error)
}
