package statistics

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
	"github.com/FOFANA12/storefront-backend-project/internal/metrics"
)

// DefaultRecentOrdersLimit применяется, когда вызывающая сторона не задала
// собственный лимит последних заказов.
const DefaultRecentOrdersLimit = 5

// Service — прикладной слой над аналитическими выборками.
type Service struct {
	queries domain.StatisticsQueries
	logger  *log.Entry
	metrics *metrics.StoreMetrics
}

// NewService создаёт сервис статистики.
func NewService(queries domain.StatisticsQueries, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "statistics")
	}
	return &Service{
		queries: queries,
		logger:  logger,
		metrics: metrics.NewStoreMetrics(),
	}
}

// CurrentOrders возвращает открытые заказы пользователя.
func (s *Service) CurrentOrders(userID int64) ([]domain.Order, error) {
	return s.ordersByStatus(userID, domain.OrderStatusActive)
}

// CompletedOrders возвращает завершённые заказы пользователя.
func (s *Service) CompletedOrders(userID int64) ([]domain.Order, error) {
	return s.ordersByStatus(userID, domain.OrderStatusComplete)
}

func (s *Service) ordersByStatus(userID int64, status domain.OrderStatus) ([]domain.Order, error) {
	start := time.Now()
	orders, err := s.queries.OrdersByUserAndStatus(userID, status)
	s.metrics.RecordOperation("stats.orders_by_status", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"user_id": userID,
			"status":  status,
		}).Error("orders by status failed")
		return nil, err
	}
	return orders, nil
}

// RecentOrders возвращает не более limit последних заказов пользователя.
// limit <= 0 заменяется на DefaultRecentOrdersLimit.
func (s *Service) RecentOrders(userID int64, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = DefaultRecentOrdersLimit
	}

	start := time.Now()
	orders, err := s.queries.RecentOrders(userID, limit)
	s.metrics.RecordOperation("stats.recent_orders", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("recent orders failed")
		return nil, err
	}
	return orders, nil
}

// TopOrderedProducts возвращает не более limit самых часто заказываемых
// товаров; limit передаётся в выборку как есть, ноль даёт пустой результат.
func (s *Service) TopOrderedProducts(limit int) ([]domain.Product, error) {
	start := time.Now()
	products, err := s.queries.TopOrderedProducts(limit)
	s.metrics.RecordOperation("stats.top_products", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).WithField("limit", limit).Error("top ordered products failed")
		return nil, err
	}
	return products, nil
}
