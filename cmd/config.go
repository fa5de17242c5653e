package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fooddelivery/internal/pkg/errs"
)

const (
	defaultHTTPPort          = "8080"
	defaultDBSslMode         = "disable"
	defaultOrderChangedTopic = "order.changed"
	defaultOutboxBatchSize   = 100
	defaultRequestTimeout    = 10 * time.Second
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxBatchSize        int
	RequestTimeout         time.Duration
}

// LoadConfig reads the configuration through getenv, normally os.Getenv
// after godotenv has populated the environment.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), defaultDBSslMode),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: withDefault(getenv("KAFKA_ORDER_CHANGED_TOPIC"), defaultOrderChangedTopic),
		OutboxBatchSize:        defaultOutboxBatchSize,
		RequestTimeout:         defaultRequestTimeout,
	}

	var parseErrs []error
	if raw := getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("OUTBOX_BATCH_SIZE", err))
		}
		cfg.OutboxBatchSize = size
	}
	if raw := getenv("REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("REQUEST_TIMEOUT", err))
		}
		cfg.RequestTimeout = timeout
	}
	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	required := []struct{ key, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}
	if c.OutboxBatchSize <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("OUTBOX_BATCH_SIZE", c.OutboxBatchSize, 1, "unbounded"))
	}
	if c.RequestTimeout < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("REQUEST_TIMEOUT", c.RequestTimeout, 0, "unbounded"))
	}
	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether order events should be relayed to a broker.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
