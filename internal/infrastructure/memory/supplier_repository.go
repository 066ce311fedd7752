package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	col *collection[entity.Supplier]
}

// NewSupplierRepository construye el adaptador sobre el almacén compartido.
func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{col: s.suppliers}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	*supplier = r.col.insert(func(id int64) entity.Supplier {
		s := *supplier
		s.ID = id
		return s
	})
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	items := r.col.list()
	out := make([]*entity.Supplier, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	if !r.col.replace(supplier.ID, *supplier) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
