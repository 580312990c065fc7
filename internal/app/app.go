package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/FOFANA12/storefront-backend-project/internal/health"
	"github.com/FOFANA12/storefront-backend-project/internal/messaging/kafka"
	"github.com/FOFANA12/storefront-backend-project/internal/service/orders"
	"github.com/FOFANA12/storefront-backend-project/internal/service/statistics"
	"github.com/FOFANA12/storefront-backend-project/internal/storage/postgres"
	"github.com/FOFANA12/storefront-backend-project/internal/version"
)

// App связывает хранилище, сервисы и наблюдаемость. Транспортный слой
// (HTTP-обработчики) живёт вне этого модуля и работает поверх Orders и
// Statistics.
type App struct {
	Orders     *orders.Service
	Statistics *statistics.Service
	Deps       *Dependencies

	cfg            Config
	logger         *log.Entry
	store          *postgres.Store
	kafkaProducer  *kafka.Producer
	cleanupStorage func()
}

// New собирает приложение по конфигурации: хранилище, опциональный Kafka
// producer и сервисы поверх них.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := log.WithField("component", "app")

	deps, store, cleanupStorage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Kafka опционален: без брокеров события просто не публикуются.
	kafkaProducer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)

	var orderService *orders.Service
	if kafkaProducer != nil {
		orderService = orders.NewServiceWithKafka(deps.Orders, kafkaProducer, logger.WithField("layer", "orders"))
	} else {
		orderService = orders.NewService(deps.Orders, logger.WithField("layer", "orders"))
	}
	statsService := statistics.NewService(deps.Statistics, logger.WithField("layer", "statistics"))

	return &App{
		Orders:         orderService,
		Statistics:     statsService,
		Deps:           deps,
		cfg:            cfg,
		logger:         logger,
		store:          store,
		kafkaProducer:  kafkaProducer,
		cleanupStorage: cleanupStorage,
	}, nil
}

// Close освобождает пул подключений и Kafka producer.
func (a *App) Close() {
	closeKafka(a.kafkaProducer, a.logger)
	if a.cleanupStorage != nil {
		a.cleanupStorage()
	}
}

// Run запускает HTTP-сервер метрик и health-проверок и блокируется до отмены
// контекста. Пул подключений живёт ровно столько, сколько живёт процесс.
func (a *App) Run(ctx context.Context) error {
	healthHandler := healthcheck.NewHandler(version.Version())
	if a.store != nil {
		store := a.store
		healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return store.Ping(pingCtx)
		}))
	}

	srv, srvErr := startMetricsServer(a.cfg.MetricsAddr, a.logger, healthHandler)

	select {
	case <-ctx.Done():
		a.logger.Info("получен сигнал остановки, завершаем работу")
		shutdownHTTP(srv, a.logger)
		return ctx.Err()
	case err := <-srvErr:
		return err
	}
}

// Run — удобный путь для cmd: собрать приложение и работать до остановки.
func Run(ctx context.Context, cfg Config) error {
	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}

// startMetricsServer запускает HTTP-обработчики /metrics и health-проверок.
func startMetricsServer(addr string, logger *log.Entry, healthHandler *healthcheck.Handler) (*http.Server, <-chan error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez", addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return srv, errCh
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
