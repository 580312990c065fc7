package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) List() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, user_id
		FROM orders
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
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

func (r *orderRepository) Get(id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var order domain.Order
	var status string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, status, user_id
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &status, &order.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order %d: %w", id, err)
	}
	order.Status = domain.OrderStatus(status)

	lines, err := loadOrderLines(ctx, r.db, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Products = lines

	return order, nil
}

func (r *orderRepository) Create(order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	created := domain.Order{
		Status: order.Status,
		UserID: order.UserID,
	}
	var status string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (status, user_id)
		VALUES ($1, $2)
		RETURNING id, status, user_id
	`, string(order.Status), order.UserID).Scan(&created.ID, &status, &created.UserID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Order{}, domain.ErrUserNotFound
		}
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	created.Status = domain.OrderStatus(status)

	created.Products, err = insertOrderLinesTx(ctx, tx, created.ID, order.Products)
	if err != nil {
		return domain.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit create order: %w", err)
	}

	return created, nil
}

// Update реализует политику полной замены: статус шапки обновляется, прежние
// позиции удаляются, входной набор вставляется заново — всё в одной транзакции.
func (r *orderRepository) Update(id int64, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var updated domain.Order
	var status string
	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, status, user_id
	`, string(order.Status), id).Scan(&updated.ID, &status, &updated.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrOrderNotFound
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}
	updated.Status = domain.OrderStatus(status)

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM order_products
		WHERE order_id = $1
	`, id); err != nil {
		return domain.Order{}, fmt.Errorf("delete order %d lines: %w", id, err)
	}

	updated.Products, err = insertOrderLinesTx(ctx, tx, id, order.Products)
	if err != nil {
		return domain.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit update order: %w", err)
	}

	return updated, nil
}

func (r *orderRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM order_products
		WHERE order_id = $1
	`, id); err != nil {
		return fmt.Errorf("delete order %d lines: %w", id, err)
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM orders
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete order: %w", err)
	}

	return nil
}

func (r *orderRepository) AddProduct(orderID int64, line domain.OrderLine) (domain.OrderLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT status
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.OrderLine{}, domain.ErrOrderNotFound
		}
		return domain.OrderLine{}, fmt.Errorf("select order %d: %w", orderID, err)
	}

	if domain.StatusClosed(domain.OrderStatus(status)) {
		return domain.OrderLine{}, domain.ErrOrderClosed
	}

	var inserted domain.OrderLine
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO order_products (quantity, product_id, order_id)
		VALUES ($1, $2, $3)
		RETURNING product_id, quantity
	`, line.Quantity, line.ProductID, orderID).Scan(&inserted.ProductID, &inserted.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.OrderLine{}, domain.ErrProductNotFound
		}
		return domain.OrderLine{}, fmt.Errorf("insert order %d line: %w", orderID, err)
	}

	return inserted, nil
}

// insertOrderLinesTx вставляет позиции заказа по одной строке за statement и
// возвращает их в порядке вставки, как их отдало хранилище.
func insertOrderLinesTx(ctx context.Context, tx *sql.Tx, orderID int64, lines []domain.OrderLine) ([]domain.OrderLine, error) {
	inserted := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		var row domain.OrderLine
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_products (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING product_id, quantity
		`, orderID, line.ProductID, line.Quantity).Scan(&row.ProductID, &row.Quantity)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("insert order %d line: %w", orderID, err)
		}
		inserted = append(inserted, row)
	}
	return inserted, nil
}

type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// loadOrderLines гидрирует позиции одного заказа отдельным запросом; порядок
// строк — естественный порядок сканирования хранилища.
func loadOrderLines(ctx context.Context, q rowQuerier, orderID int64) ([]domain.OrderLine, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT product_id, quantity
		FROM order_products
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d lines: %w", orderID, err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order %d line: %w", orderID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order %d lines: %w", orderID, err)
	}

	return lines, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
