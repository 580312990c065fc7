package orders

import (
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
	"github.com/FOFANA12/storefront-backend-project/internal/messaging/kafka"
	"github.com/FOFANA12/storefront-backend-project/internal/metrics"
)

// Service — прикладной слой над OrderRepository: проверяет входные данные на
// границе, пишет метрики и публикует события жизненного цикла заказа.
type Service struct {
	repo          domain.OrderRepository
	logger        *log.Entry
	metrics       *metrics.StoreMetrics
	kafkaProducer *kafka.Producer // опциональный, события публикуются best-effort
}

// NewService создаёт рабочий экземпляр сервиса заказов.
func NewService(repo domain.OrderRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Service{
		repo:    repo,
		logger:  logger,
		metrics: metrics.NewStoreMetrics(),
	}
}

// NewServiceWithKafka создаёт сервис заказов, публикующий события в Kafka.
func NewServiceWithKafka(repo domain.OrderRepository, producer *kafka.Producer, logger *log.Entry) *Service {
	svc := NewService(repo, logger)
	svc.kafkaProducer = producer
	return svc
}

// List возвращает все заказы с позициями.
func (s *Service) List() ([]domain.Order, error) {
	start := time.Now()
	orders, err := s.repo.List()
	s.metrics.RecordOperation("orders.list", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).Error("list orders failed")
		return nil, err
	}
	return orders, nil
}

// Get возвращает один заказ с позициями.
func (s *Service) Get(id int64) (domain.Order, error) {
	start := time.Now()
	order, err := s.repo.Get(id)
	s.metrics.RecordOperation("orders.get", time.Since(start), err)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithError(err).WithField("order_id", id).Error("get order failed")
		}
		return domain.Order{}, err
	}
	return order, nil
}

// Create валидирует и сохраняет новый заказ, затем публикует order.created.
func (s *Service) Create(order domain.Order) (domain.Order, error) {
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}

	start := time.Now()
	created, err := s.repo.Create(order)
	s.metrics.RecordOperation("orders.create", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", order.UserID).Error("create order failed")
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": created.ID,
		"user_id":  created.UserID,
		"status":   created.Status,
		"lines":    len(created.Products),
	}).Info("order created")

	s.publishEvent(kafka.NewOrderEvent(kafka.EventTypeOrderCreated, created.ID, created.UserID, string(created.Status), nil))

	return created, nil
}

// Update валидирует и применяет полную замену статуса и позиций заказа.
func (s *Service) Update(id int64, order domain.Order) (domain.Order, error) {
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}

	start := time.Now()
	updated, err := s.repo.Update(id, order)
	s.metrics.RecordOperation("orders.update", time.Since(start), err)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithError(err).WithField("order_id", id).Error("update order failed")
		}
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": updated.ID,
		"status":   updated.Status,
		"lines":    len(updated.Products),
	}).Info("order updated")

	s.publishEvent(kafka.NewOrderEvent(kafka.EventTypeOrderUpdated, updated.ID, updated.UserID, string(updated.Status), nil))

	return updated, nil
}

// Delete удаляет заказ вместе с позициями и публикует order.deleted.
func (s *Service) Delete(id int64) error {
	start := time.Now()
	err := s.repo.Delete(id)
	s.metrics.RecordOperation("orders.delete", time.Since(start), err)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", id).Error("delete order failed")
		return err
	}

	s.logger.WithField("order_id", id).Info("order deleted")
	s.publishEvent(kafka.NewOrderEvent(kafka.EventTypeOrderDeleted, id, 0, "", nil))

	return nil
}

// AddProduct добавляет позицию в открытый заказ.
func (s *Service) AddProduct(orderID int64, line domain.OrderLine) (domain.OrderLine, error) {
	if line.ProductID <= 0 {
		return domain.OrderLine{}, domain.ErrProductIDRequired
	}
	if line.Quantity <= 0 {
		return domain.OrderLine{}, domain.ErrQuantityInvalid
	}

	start := time.Now()
	added, err := s.repo.AddProduct(orderID, line)
	s.metrics.RecordOperation("orders.add_product", time.Since(start), err)
	if err != nil {
		if !domain.IsNotFound(err) && !errors.Is(err, domain.ErrOrderClosed) {
			s.logger.WithError(err).WithField("order_id", orderID).Error("add product to order failed")
		}
		return domain.OrderLine{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"product_id": added.ProductID,
		"quantity":   added.Quantity,
	}).Info("product added to order")

	s.publishEvent(kafka.NewOrderEvent(kafka.EventTypeOrderProductAdded, orderID, 0, "", map[string]interface{}{
		"product_id": added.ProductID,
		"quantity":   added.Quantity,
	}))

	return added, nil
}

// publishEvent отправляет событие в Kafka, если producer сконфигурирован.
// Неудачная публикация не отменяет уже завершённую операцию хранилища.
func (s *Service) publishEvent(event *kafka.OrderEvent) {
	if s.kafkaProducer == nil {
		return
	}

	key := strconv.FormatInt(event.OrderID, 10)
	if err := s.kafkaProducer.PublishEvent(kafka.TopicOrderEvents, key, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.EventType,
			"order_id":   event.OrderID,
		}).Warn("failed to publish order event")
		return
	}
	s.metrics.RecordEventPublished()
}
