package memory

import (
	"sort"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

// statsQueries — in-memory реализация StatisticsQueries поверх общего
// состояния Store.
type statsQueries struct {
	store *Store
}

// OrdersByUserAndStatus возвращает заказы пользователя с точным совпадением
// статуса, по возрастанию id.
func (q *statsQueries) OrdersByUserAndStatus(userID int64, status domain.OrderStatus) ([]domain.Order, error) {
	q.store.mu.RLock()
	defer q.store.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range q.store.orders {
		if order.UserID != userID || order.Status != status {
			continue
		}
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID < orders[j].ID
	})

	return orders, nil
}

// RecentOrders возвращает не более limit последних заказов пользователя,
// по убыванию id.
func (q *statsQueries) RecentOrders(userID int64, limit int) ([]domain.Order, error) {
	q.store.mu.RLock()
	defer q.store.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range q.store.orders {
		if order.UserID != userID {
			continue
		}
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})

	if limit < 0 {
		limit = 0
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

// TopOrderedProducts считает строки позиций по каждому товару во всех заказах
// и возвращает не более limit товаров по убыванию счётчика. При равенстве
// счётчиков порядок определяется id товара.
func (q *statsQueries) TopOrderedProducts(limit int) ([]domain.Product, error) {
	q.store.mu.RLock()
	defer q.store.mu.RUnlock()

	counts := make(map[int64]int)
	for _, order := range q.store.orders {
		for _, line := range order.Products {
			counts[line.ProductID]++
		}
	}

	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if limit < 0 {
		limit = 0
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, ok := q.store.products[id]
		if !ok {
			continue
		}
		// Контракт выборки: id наружу не отдаётся.
		products = append(products, domain.Product{
			Name:     product.Name,
			Price:    product.Price,
			Category: product.Category,
		})
	}

	return products, nil
}

var _ domain.StatisticsQueries = (*statsQueries)(nil)
