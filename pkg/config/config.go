// Package config gathers process settings from the environment. Callers load a
// .env file with godotenv before calling New.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage/file"
)

const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"

	DefaultHost = "127.0.0.1"
	DefaultPort = "3847"
)

type Config struct {
	HTTPHost string
	HTTPPort string

	LogLevel  string
	LogFormat string

	StorageBackend      string
	DataFile            string
	DocumentTableName   string
	DocumentKey         string
	TransactionCapacity int

	DefaultAssignee     string
	ClassifierRulesFile string

	SQSQueueURL     string
	SQSWaitTime     time.Duration
	SQSMaxMessages  int32
	ServerURL       string
	ShutdownTimeout time.Duration
}

// Load reads .env when present and then builds the Config. A missing .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return New()
}

// New builds a Config from the current environment and validates it.
func New() (*Config, error) {
	cfg := &Config{
		HTTPHost:            getEnv("HTTP_HOST", DefaultHost),
		HTTPPort:            getEnv("HTTP_PORT", DefaultPort),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		StorageBackend:      getEnv("STORAGE_BACKEND", BackendFile),
		DataFile:            os.Getenv("DATA_FILE"),
		DocumentTableName:   os.Getenv("DYNAMODB_DOCUMENT_TABLE_NAME"),
		DocumentKey:         os.Getenv("DOCUMENT_KEY"),
		DefaultAssignee:     os.Getenv("DEFAULT_ASSIGNEE"),
		ClassifierRulesFile: os.Getenv("CLASSIFIER_RULES_FILE"),
		SQSQueueURL:         os.Getenv("SQS_QUEUE_URL"),
		ServerURL:           os.Getenv("DASHBOARD_SERVER_URL"),
	}

	var err error
	if cfg.TransactionCapacity, err = getInt("TRANSACTION_CAPACITY", models.DefaultTransactionCapacity); err != nil {
		return nil, err
	}
	maxMessages, err := getInt("SQS_MAX_MESSAGES", 10)
	if err != nil {
		return nil, err
	}
	cfg.SQSMaxMessages = int32(maxMessages)
	if cfg.SQSWaitTime, err = getDuration("SQS_WAIT_TIME", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://" + cfg.Addr()
	}
	if cfg.StorageBackend == BackendFile && cfg.DataFile == "" {
		if cfg.DataFile, err = file.DefaultPath(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendMemory:
	case BackendDynamoDB:
		if c.DocumentTableName == "" {
			return errors.New("DYNAMODB_DOCUMENT_TABLE_NAME must be set for the dynamodb backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.TransactionCapacity <= 0 {
		return fmt.Errorf("TRANSACTION_CAPACITY must be positive, got %d", c.TransactionCapacity)
	}
	if c.SQSMaxMessages < 1 || c.SQSMaxMessages > 10 {
		return fmt.Errorf("SQS_MAX_MESSAGES must be between 1 and 10, got %d", c.SQSMaxMessages)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
