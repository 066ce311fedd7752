package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	col *collection[entity.Product]
}

// NewProductRepository construye el adaptador sobre el almacén compartido.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{col: s.products}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	*product = r.col.insert(func(id int64) entity.Product {
		p := *product
		p.ID = id
		return p
	})
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.col.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	items := r.col.list()
	out := make([]*entity.Product, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	if !r.col.replace(product.ID, *product) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id int64) (bool, error) {
	return r.col.remove(id), nil
}
