// Package config reads service settings from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	SinkNone  = "none"
	SinkKafka = "kafka"
	SinkSQS   = "sqs"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	LogLevel    logrus.Level
	LockTimeout time.Duration

	EventsSink    string
	KafkaBrokers  []string
	KafkaTopic    string
	AWSRegion     string
	AWSEndpoint   string
	QueueURL      string
	RelayInterval time.Duration
	RelayBatch    int
}

// Load reads envFiles (".env" when none given) without overriding variables already set, then
// builds the config. Missing env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	var (
		cfg  Config
		errs []error
	)

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	cfg.LockTimeout, err = getDuration("LOCK_TIMEOUT", 5*time.Second)
	if err != nil {
		errs = append(errs, err)
	}

	cfg.EventsSink = strings.ToLower(getEnv("EVENTS_SINK", SinkNone))
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "order-events")
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.AWSEndpoint = getEnv("AWS_ENDPOINT_OVERRIDE", "")
	cfg.QueueURL = getEnv("ORDER_EVENTS_QUEUE_URL", "")

	cfg.RelayInterval, err = getDuration("RELAY_INTERVAL", 2*time.Second)
	if err != nil {
		errs = append(errs, err)
	}

	cfg.RelayBatch, err = getInt("RELAY_BATCH", 100)
	if err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, cfg.validate()...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

func (c Config) validate() []error {
	var errs []error

	if c.LockTimeout < 0 {
		errs = append(errs, fmt.Errorf("LOCK_TIMEOUT[%s] is negative", c.LockTimeout))
	}
	if c.RelayInterval <= 0 {
		errs = append(errs, fmt.Errorf("RELAY_INTERVAL[%s] is not positive", c.RelayInterval))
	}
	if c.RelayBatch <= 0 {
		errs = append(errs, fmt.Errorf("RELAY_BATCH[%d] is not positive", c.RelayBatch))
	}

	switch c.EventsSink {
	case SinkNone:
	case SinkKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, fmt.Errorf("KAFKA_BROKERS is required for the kafka sink"))
		}
	case SinkSQS:
		if c.QueueURL == "" {
			errs = append(errs, fmt.Errorf("ORDER_EVENTS_QUEUE_URL is required for the sqs sink"))
		}
	default:
		errs = append(errs, fmt.Errorf("EVENTS_SINK[%s] is unknown", c.EventsSink))
	}

	return errs
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
