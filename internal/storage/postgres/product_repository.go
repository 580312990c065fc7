package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) List() ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category
		FROM products
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Category); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Get(id int64) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var product domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, category
		FROM products
		WHERE id = $1
	`, id).Scan(&product.ID, &product.Name, &product.Price, &product.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product %d: %w", id, err)
	}

	return product, nil
}

func (r *productRepository) Create(product domain.Product) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var created domain.Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, price, category
	`, product.Name, product.Price, product.Category).Scan(
		&created.ID, &created.Name, &created.Price, &created.Category,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return created, nil
}

func (r *productRepository) Update(id int64, product domain.Product) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var updated domain.Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $1,
		    price = $2,
		    category = $3
		WHERE id = $4
		RETURNING id, name, price, category
	`, product.Name, product.Price, product.Category, id).Scan(
		&updated.ID, &updated.Name, &updated.Price, &updated.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}

	return updated, nil
}

func (r *productRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM products
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
