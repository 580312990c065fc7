package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
// Дайджест пароля хранится как есть; хэширование выполняется уровнем выше.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{db: store.DB()}
}

func (r *userRepository) List() ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, firstname, lastname, username
		FROM users
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) Get(id int64) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var user domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, firstname, lastname, username
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user %d: %w", id, err)
	}

	return user, nil
}

func (r *userRepository) Create(user domain.UserAuth) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var created domain.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (firstname, lastname, username, password_digest)
		VALUES ($1, $2, $3, $4)
		RETURNING id, firstname, lastname, username
	`, user.FirstName, user.LastName, user.Username, user.PasswordDigest).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.Username,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return created, nil
}

func (r *userRepository) Update(id int64, user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var updated domain.User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET firstname = $1,
		    lastname = $2,
		    username = $3
		WHERE id = $4
		RETURNING id, firstname, lastname, username
	`, user.FirstName, user.LastName, user.Username, id).Scan(
		&updated.ID, &updated.FirstName, &updated.LastName, &updated.Username,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	return updated, nil
}

func (r *userRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	return nil
}

func (r *userRepository) GetByUsername(username string) (domain.UserAuth, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var user domain.UserAuth
	err := r.db.QueryRowContext(ctx, `
		SELECT id, firstname, lastname, username, password_digest
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.PasswordDigest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserAuth{}, domain.ErrUserNotFound
		}
		return domain.UserAuth{}, fmt.Errorf("select user %q: %w", username, err)
	}

	return user, nil
}

var _ domain.UserRepository = (*userRepository)(nil)
