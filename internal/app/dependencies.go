package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
	"github.com/FOFANA12/storefront-backend-project/internal/storage/memory"
)

// Dependencies содержит репозитории и выборки, из которых собираются сервисы.
type Dependencies struct {
	Orders     domain.OrderRepository
	Products   domain.ProductRepository
	Users      domain.UserRepository
	Statistics domain.StatisticsQueries
	Logger     *log.Entry
}

// NewDependencies создаёт in-memory зависимости для разработки и тестов.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	store := memory.NewStore()
	return &Dependencies{
		Orders:     store.Orders(),
		Products:   store.Products(),
		Users:      store.Users(),
		Statistics: store.Statistics(),
		Logger:     logger,
	}
}
