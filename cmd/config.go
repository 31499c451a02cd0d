package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"supplychain/internal/jobs"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	Storage  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr    string
	RoleCacheTTL time.Duration

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	OutboxBatchSize int
	OutboxSchedule  string

	LogLevel slog.Level
}

// NewConfig reads the configuration through getenv, applying defaults for unset
// values.
func NewConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              withDefault(getenv("HTTP_PORT"), "8080"),
		Storage:               strings.ToLower(withDefault(getenv("STORAGE"), StorageMemory)),
		DBHost:                getenv("DB_HOST"),
		DBPort:                withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             withDefault(getenv("DB_SSLMODE"), "disable"),
		RedisAddr:             strings.TrimSpace(getenv("REDIS_ADDR")),
		KafkaBrokers:          splitList(getenv("KAFKA_BROKERS")),
		KafkaOrderEventsTopic: withDefault(getenv("KAFKA_ORDER_EVENTS_TOPIC"), "livestock.orders"),
		OutboxBatchSize:       100,
		OutboxSchedule:        withDefault(getenv("OUTBOX_SCHEDULE"), jobs.DefaultOutboxSchedule),
	}

	var errList []error
	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBHost == "" || cfg.DBName == "" {
			errList = append(errList, errors.New("DB_HOST and DB_NAME are required for postgres storage"))
		}
	default:
		errList = append(errList, fmt.Errorf("STORAGE: unknown backend %q", cfg.Storage))
	}

	if v := getenv("ROLE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			errList = append(errList, fmt.Errorf("ROLE_CACHE_TTL: invalid duration %q", v))
		}
		cfg.RoleCacheTTL = ttl
	}
	if v := getenv("OUTBOX_BATCH_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			errList = append(errList, fmt.Errorf("OUTBOX_BATCH_SIZE: %q is not a positive integer", v))
		}
		cfg.OutboxBatchSize = size
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PostgresDSN is the keyword/value connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
