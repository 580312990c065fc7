package app

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected metrics addr :9090, got %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Errorf("expected memory storage driver, got %s", cfg.StorageDriver)
	}
	if !cfg.PostgresAutoMigrate {
		t.Error("expected auto-migrate enabled by default")
	}
	if cfg.PostgresDSN != "" {
		t.Errorf("expected empty DSN by default, got %s", cfg.PostgresDSN)
	}
	if cfg.KafkaBrokers != "" {
		t.Errorf("expected no kafka brokers by default, got %s", cfg.KafkaBrokers)
	}
}
