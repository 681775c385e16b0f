package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"shipments/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	TrackingAPIURL    string
	TrackingAPIToken  string
	HTTPClientTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisHost string
	RedisPort int
	RedisDB   int

	KafkaHost        string
	KafkaStatusTopic string

	SyncSchedule     string
	TransitionPolicy string
}

// UsesDatabase reports whether the order mirror lives in Postgres.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

const (
	defaultHTTPPort         = "8080"
	defaultTrackingAPIURL   = "http://localhost:8000"
	defaultClientTimeout    = 15 * time.Second
	defaultRedisPort        = 6379
	defaultKafkaStatusTopic = "shipment.status-changed"
)

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := durationVariable("HTTP_CLIENT_TIMEOUT", defaultClientTimeout)
	if err != nil {
		return Config{}, err
	}
	redisPort, err := intVariable("REDIS_PORT", defaultRedisPort)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := intVariable("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:          stringVariable("HTTP_PORT", defaultHTTPPort),
		TrackingAPIURL:    stringVariable("TRACKING_API_URL", defaultTrackingAPIURL),
		TrackingAPIToken:  os.Getenv("TRACKING_API_TOKEN"),
		HTTPClientTimeout: timeout,
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            stringVariable("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         stringVariable("DB_SSLMODE", "disable"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         redisPort,
		RedisDB:           redisDB,
		KafkaHost:         os.Getenv("KAFKA_HOST"),
		KafkaStatusTopic:  stringVariable("KAFKA_STATUS_TOPIC", defaultKafkaStatusTopic),
		SyncSchedule:      os.Getenv("SYNC_SCHEDULE"),
		TransitionPolicy:  stringVariable("STATUS_TRANSITION_POLICY", "permissive"),
	}, nil
}

func stringVariable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return d, nil
}

func intVariable(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}
