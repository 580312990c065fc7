package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/FOFANA12/storefront-backend-project/internal/storage/postgres"
)

// initStorage собирает зависимости для выбранного драйвера хранилища.
// Возвращает также функцию освобождения ресурсов (закрытие пула).
func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, *postgres.Store, func(), error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		logger.Info("using in-memory storage")
		return NewDependencies(logger), nil, func() {}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, nil, nil, fmt.Errorf("postgres storage requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open postgres store: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, nil, nil, fmt.Errorf("apply migrations: %w", err)
			}
			version, applied, err := store.MigrationStatus(ctx)
			if err != nil {
				_ = store.Close()
				return nil, nil, nil, fmt.Errorf("migration status: %w", err)
			}
			logger.WithFields(log.Fields{
				"schema_version": version,
				"applied":        applied,
			}).Info("migrations applied")
		}

		deps := &Dependencies{
			Orders:     postgres.NewOrderRepository(store),
			Products:   postgres.NewProductRepository(store),
			Users:      postgres.NewUserRepository(store),
			Statistics: postgres.NewStatisticsQueries(store),
			Logger:     logger,
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("failed to close postgres store")
			}
		}
		logger.Info("using postgres storage")
		return deps, store, cleanup, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
