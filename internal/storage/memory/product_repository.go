package memory

import (
	"sort"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

type productRepository struct {
	store *Store
}

func (r *productRepository) List() ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (r *productRepository) Get(id int64) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *productRepository) Create(product domain.Product) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextProductID++
	product.ID = r.store.nextProductID
	r.store.products[product.ID] = product

	return product, nil
}

func (r *productRepository) Update(id int64, product domain.Product) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	product.ID = id
	r.store.products[id] = product

	return product, nil
}

func (r *productRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.products, id)
	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
