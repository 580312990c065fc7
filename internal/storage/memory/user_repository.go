package memory

import (
	"sort"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) List() ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user.User)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

func (r *userRepository) Get(id int64) (domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user.User, nil
}

func (r *userRepository) Create(user domain.UserAuth) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	r.store.users[user.ID] = user

	return user.User, nil
}

func (r *userRepository) Update(id int64, user domain.User) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	user.ID = id
	current.User = user
	r.store.users[id] = current

	return user, nil
}

func (r *userRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.users, id)
	return nil
}

func (r *userRepository) GetByUsername(username string) (domain.UserAuth, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.UserAuth{}, domain.ErrUserNotFound
}

var _ domain.UserRepository = (*userRepository)(nil)
