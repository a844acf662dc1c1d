package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gt=0,lte=65535"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	Environment string `validate:"oneof=dev staging prod"`
	APIKey      string // optional; empty disables auth

	SnapshotBackend string `validate:"oneof=file postgres memory"`
	SnapshotPath    string
	SaveDebounce    time.Duration `validate:"gt=0"`

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	OracleURL     string
	OracleAPIKey  string
	OracleTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ServiceName:     getEnv("SERVICE_NAME", "cookie-rng"),
		Version:         getEnv("VERSION", "dev"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		APIKey:          getEnv("API_KEY", ""),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", "file"),
		SnapshotPath:    getEnv("SNAPSHOT_PATH", "data/save.json"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "cookierng"),
		OracleURL:       getEnv("ORACLE_URL", ""),
		OracleAPIKey:    getEnv("ORACLE_API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	debounce, err := parseSeconds("SAVE_DEBOUNCE_SECONDS", "1")
	if err != nil {
		return nil, err
	}
	cfg.SaveDebounce = debounce

	oracleTimeout, err := parseSeconds("ORACLE_TIMEOUT_SECONDS", "10")
	if err != nil {
		return nil, err
	}
	cfg.OracleTimeout = oracleTimeout

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func parseSeconds(key, defaultValue string) (time.Duration, error) {
	raw := getEnv(key, defaultValue)
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return time.Duration(secs) * time.Second, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
