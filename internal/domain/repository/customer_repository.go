package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// GetByID devuelve (nil, nil) si el id no existe; Delete informa si había registro.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) (bool, error)
}
