package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.False(t, cfg.App.DemoMode)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, DatasetEmbedded, cfg.Dataset.Source)
	assert.Equal(t, 10*time.Second, cfg.Dataset.Timeout)
	assert.Equal(t, "employee_info.json", cfg.Dataset.EmployeesFile)
	assert.Equal(t, "attendance.json", cfg.Dataset.AttendanceFile)
	assert.Equal(t, "payroll_data.json", cfg.Dataset.PayrollFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DATASET_SOURCE", "HTTP")
	t.Setenv("DATASET_BASE_URL", "http://data.local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, DatasetHTTP, cfg.Dataset.Source)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port", "APP_PORT", "abc"},
		{"demo mode", "DEMO_MODE", "maybe"},
		{"ttl", "SESSION_TTL", "one day"},
		{"timeout", "DATASET_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "test-secret")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Session: SessionConfig{Secret: "s", TTL: time.Hour},
			Storage: StorageConfig{Type: StorageMemory},
			Dataset: DatasetConfig{Source: DatasetEmbedded},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing secret", func(c *Config) { c.Session.Secret = "" }, "SESSION_SECRET"},
		{"unknown storage", func(c *Config) { c.Storage.Type = "s3" }, "STORAGE_TYPE"},
		{"postgres without password", func(c *Config) { c.Storage.Type = StoragePostgres }, "DB_PASSWORD"},
		{"http without url", func(c *Config) { c.Dataset.Source = DatasetHTTP }, "DATASET_BASE_URL"},
		{"dir without path", func(c *Config) { c.Dataset.Source = DatasetDir }, "DATASET_DIR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	c := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "hr", Password: "pw", Name: "worksphere", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://hr:pw@db:5433/worksphere?sslmode=disable", c.DatabaseURL())
}
