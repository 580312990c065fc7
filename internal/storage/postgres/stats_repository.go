package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatisticsQueries создаёт PostgreSQL-реализацию StatisticsQueries.
func NewStatisticsQueries(store *Store) domain.StatisticsQueries {
	return &statsRepository{db: store.DB()}
}

func (r *statsRepository) OrdersByUserAndStatus(userID int64, status domain.OrderStatus) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, user_id
		FROM orders
		WHERE user_id = $1
		  AND status = $2
		ORDER BY id ASC
	`, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list user %d orders by status: %w", userID, err)
	}

	return r.collectOrders(ctx, rows)
}

func (r *statsRepository) RecentOrders(userID int64, limit int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, user_id
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list user %d recent orders: %w", userID, err)
	}

	return r.collectOrders(ctx, rows)
}

// TopOrderedProducts ранжирует товары по числу строк позиций, ссылающихся на
// товар, а не по суммарному количеству. Поле id в результат не попадает.
func (r *statsRepository) TopOrderedProducts(limit int) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT products.name, products.price, products.category
		FROM products
		JOIN order_products ON products.id = order_products.product_id
		GROUP BY products.id
		ORDER BY COUNT(products.id) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list top ordered products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.Name, &product.Price, &product.Category); err != nil {
			return nil, fmt.Errorf("scan top product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top product rows: %w", err)
	}

	return products, nil
}

// collectOrders вычитывает строки шапок и гидрирует каждый заказ его позициями.
func (r *statsRepository) collectOrders(ctx context.Context, rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.ID, &status, &order.UserID); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		lines, err := loadOrderLines(ctx, r.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Products = lines
	}

	return orders, nil
}

var _ domain.StatisticsQueries = (*statsRepository)(nil)
