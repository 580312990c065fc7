package memory

import (
	"sort"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

// orderRepository — простая in-memory реализация OrderRepository поверх
// общего состояния Store.
type orderRepository struct {
	store *Store
}

// List возвращает все заказы с позициями в порядке возрастания id.
func (r *orderRepository) List() ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID < orders[j].ID
	})

	return orders, nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepository) Get(id int64) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// Create сохраняет заказ, присваивая идентификатор. Ссылочная целостность
// проверяется как в реляционном хранилище: пользователь и товары должны
// существовать.
func (r *orderRepository) Create(order domain.Order) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[order.UserID]; !ok {
		return domain.Order{}, domain.ErrUserNotFound
	}
	for _, line := range order.Products {
		if _, ok := r.store.products[line.ProductID]; !ok {
			return domain.Order{}, domain.ErrProductNotFound
		}
	}

	r.store.nextOrderID++
	created := cloneOrder(order)
	created.ID = r.store.nextOrderID
	r.store.orders[created.ID] = cloneOrder(created)

	return created, nil
}

// Update заменяет статус и полный набор позиций заказа.
func (r *orderRepository) Update(id int64, order domain.Order) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	for _, line := range order.Products {
		if _, ok := r.store.products[line.ProductID]; !ok {
			return domain.Order{}, domain.ErrProductNotFound
		}
	}

	updated := cloneOrder(order)
	updated.ID = current.ID
	updated.UserID = current.UserID
	r.store.orders[id] = cloneOrder(updated)

	return updated, nil
}

// Delete удаляет заказ вместе с позициями; отсутствие заказа не ошибка.
func (r *orderRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.orders, id)
	return nil
}

// AddProduct добавляет позицию, если заказ не закрыт.
func (r *orderRepository) AddProduct(orderID int64, line domain.OrderLine) (domain.OrderLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.OrderLine{}, domain.ErrOrderNotFound
	}
	if domain.StatusClosed(order.Status) {
		return domain.OrderLine{}, domain.ErrOrderClosed
	}
	if _, ok := r.store.products[line.ProductID]; !ok {
		return domain.OrderLine{}, domain.ErrProductNotFound
	}

	order.Products = append(order.Products, line)
	r.store.orders[orderID] = cloneOrder(order)

	return line, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
