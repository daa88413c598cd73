package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Session  SessionConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Dataset  DatasetConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	// DemoMode accepts any password for allow-listed demo emails.
	DemoMode bool
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

const (
	StorageMemory   = "memory"
	StorageLocal    = "local"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	Type     string
	BasePath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

const (
	DatasetEmbedded = "embedded"
	DatasetHTTP     = "http"
	DatasetDir      = "dir"
)

// DatasetConfig says where the employee, attendance and payroll documents come from.
type DatasetConfig struct {
	Source         string
	BaseURL        string
	Dir            string
	Timeout        time.Duration
	EmployeesFile  string
	AttendanceFile string
	PayrollFile    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	demoMode, err := strconv.ParseBool(getEnv("DEMO_MODE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEMO_MODE: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		DemoMode:    demoMode,
	}

	// Session configuration
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.Session = SessionConfig{
		Secret: getEnv("SESSION_SECRET", ""),
		TTL:    sessionTTL,
	}

	config.Storage = StorageConfig{
		Type:     strings.ToLower(getEnv("STORAGE_TYPE", StorageMemory)),
		BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worksphere"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Dataset configuration
	datasetTimeout, err := time.ParseDuration(getEnv("DATASET_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATASET_TIMEOUT: %w", err)
	}

	config.Dataset = DatasetConfig{
		Source:         strings.ToLower(getEnv("DATASET_SOURCE", DatasetEmbedded)),
		BaseURL:        getEnv("DATASET_BASE_URL", ""),
		Dir:            getEnv("DATASET_DIR", ""),
		Timeout:        datasetTimeout,
		EmployeesFile:  getEnv("DATASET_EMPLOYEES_FILE", "employee_info.json"),
		AttendanceFile: getEnv("DATASET_ATTENDANCE_FILE", "attendance.json"),
		PayrollFile:    getEnv("DATASET_PAYROLL_FILE", "payroll_data.json"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StorageLocal:
		if c.Storage.BasePath == "" {
			return errors.New("STORAGE_BASE_PATH is required for local storage")
		}
	case StoragePostgres:
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required for postgres storage")
		}
	default:
		return fmt.Errorf("STORAGE_TYPE must be one of memory, local, postgres, got %q", c.Storage.Type)
	}

	switch c.Dataset.Source {
	case DatasetEmbedded:
	case DatasetHTTP:
		if c.Dataset.BaseURL == "" {
			return errors.New("DATASET_BASE_URL is required for http dataset source")
		}
	case DatasetDir:
		if c.Dataset.Dir == "" {
			return errors.New("DATASET_DIR is required for dir dataset source")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be one of embedded, http, dir, got %q", c.Dataset.Source)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
