package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort           string
	StorageDriver      string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	KafkaHost          string
	KafkaEventsTopic   string
	LogDir             string
	LogLevel           string
	RequestTimeout     time.Duration
	OutboxSchedule     string
	OutboxBatchSize    int
	SettlementSchedule string
	SettlementTimezone *time.Location
	AWBPrefix          string // must differ between replicas sharing a database
}

// LoadConfig reads the configuration from the environment. Unset keys take defaults;
// malformed values are errors.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPPort:           env("HTTP_PORT", "8080"),
		StorageDriver:      env("STORAGE_DRIVER", StoragePostgres),
		DBHost:             env("DB_HOST", "localhost"),
		DBPort:             env("DB_PORT", "5432"),
		DBUser:             env("DB_USER", "postgres"),
		DBPassword:         env("DB_PASSWORD", ""),
		DBName:             env("DB_NAME", "fulfillment"),
		DBSslMode:          env("DB_SSLMODE", "disable"),
		KafkaHost:          env("KAFKA_HOST", "localhost:9092"),
		KafkaEventsTopic:   env("KAFKA_EVENTS_TOPIC", "fulfillment.events"),
		LogDir:             env("LOG_DIR", ""),
		LogLevel:           env("LOG_LEVEL", "info"),
		OutboxSchedule:     env("OUTBOX_SCHEDULE", "*/5 * * * * *"),
		SettlementSchedule: env("SETTLEMENT_SCHEDULE", "0 30 0 * * *"),
		AWBPrefix:          env("AWB_PREFIX", "FUL"),
	}

	var err error
	if cfg.RequestTimeout, err = time.ParseDuration(env("REQUEST_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if cfg.OutboxBatchSize, err = strconv.Atoi(env("OUTBOX_BATCH_SIZE", "100")); err != nil {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}
	if cfg.SettlementTimezone, err = time.LoadLocation(env("SETTLEMENT_TIMEZONE", "Asia/Kolkata")); err != nil {
		return Config{}, fmt.Errorf("SETTLEMENT_TIMEZONE: %w", err)
	}
	if cfg.StorageDriver != StoragePostgres && cfg.StorageDriver != StorageMemory {
		return Config{}, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
