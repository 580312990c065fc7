package memory

import (
	"sync"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

// Store — общее in-memory состояние для локальной разработки и тестов.
// Таблицы делят один мьютекс, как связанные таблицы делят одну базу.
type Store struct {
	mu            sync.RWMutex
	users         map[int64]domain.UserAuth
	products      map[int64]domain.Product
	orders        map[int64]domain.Order
	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.UserAuth),
		products: make(map[int64]domain.Product),
		orders:   make(map[int64]domain.Order),
	}
}

// Orders возвращает in-memory реализацию OrderRepository.
func (s *Store) Orders() domain.OrderRepository {
	return &orderRepository{store: s}
}

// Products возвращает in-memory реализацию ProductRepository.
func (s *Store) Products() domain.ProductRepository {
	return &productRepository{store: s}
}

// Users возвращает in-memory реализацию UserRepository.
func (s *Store) Users() domain.UserRepository {
	return &userRepository{store: s}
}

// Statistics возвращает in-memory реализацию StatisticsQueries.
func (s *Store) Statistics() domain.StatisticsQueries {
	return &statsQueries{store: s}
}

// cloneOrder копирует заказ вместе с позициями, чтобы избежать
// непредсказуемых мутаций извне.
func cloneOrder(order domain.Order) domain.Order {
	clone := order
	clone.Products = make([]domain.OrderLine, len(order.Products))
	copy(clone.Products, order.Products)
	return clone
}
