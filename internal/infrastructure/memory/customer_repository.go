package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	col *collection[entity.Customer]
}

// NewCustomerRepository construye el adaptador sobre el almacén compartido.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{col: s.customers}
}

// Create guarda un nuevo cliente y le asigna el siguiente id.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	*customer = r.col.insert(func(id int64) entity.Customer {
		c := *customer
		c.ID = id
		return c
	})
	return nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por id.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	items := r.col.list()
	out := make([]*entity.Customer, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

// Update reemplaza el registro completo (la fusión parcial vive en el caso de uso).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	if !r.col.replace(customer.ID, *customer) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete devuelve true si había un registro que borrar.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
