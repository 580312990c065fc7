package app

// StorageDriver выбирает реализацию хранилища.
type StorageDriver string

const (
	// StorageDriverMemory — in-memory хранилище для локальной разработки.
	StorageDriverMemory StorageDriver = "memory"
	// StorageDriverPostgres — PostgreSQL через пул подключений.
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера метрик и health-проверок.
	MetricsAddr string
	// StorageDriver — memory или postgres.
	StorageDriver StorageDriver
	// PostgresDSN обязателен при StorageDriverPostgres.
	PostgresDSN string
	// PostgresAutoMigrate применяет up-миграции на старте.
	PostgresAutoMigrate bool
	// KafkaBrokers — список брокеров через запятую; пустое значение отключает
	// публикацию событий.
	KafkaBrokers string
}

// DefaultConfig возвращает базовую конфигурацию для локального запуска.
func DefaultConfig() Config {
	return Config{
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
	}
}
