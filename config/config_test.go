package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Source: SourceConfig{
			Kind:    SourceCSV,
			Path:    "weather.csv",
			Days:    7,
			Timeout: 30,
		},
	}
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-report", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, SourceCSV, config.Source.Kind)

	// Without config file, no source path is set
	assert.Empty(t, config.Source.Path)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SOURCE_KIND", "xlsx")
	t.Setenv("SOURCE_PATH", "weather.xlsx")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 3, config.Server.ReadTimeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, SourceXLSX, config.Source.Kind)
	assert.Equal(t, "weather.xlsx", config.Source.Path)
}

func TestConfigFileIsOverriddenByEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := []byte("app:\n  name: from-file\nsource:\n  kind: open-meteo\n  lat: 45.44\n  lon: 12.33\n  days: 3\n")
	require.NoError(t, os.WriteFile(path, yamlData, 0o600))

	t.Setenv("SOURCE_DAYS", "5")

	config, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.App.Name)
	assert.Equal(t, SourceOpenMeteo, config.Source.Kind)
	assert.Equal(t, 45.44, config.Source.Lat)
	assert.Equal(t, 12.33, config.Source.Lon)
	assert.Equal(t, 5, config.Source.Days)

	// untouched values keep their defaults
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 30, config.Source.Timeout)
}

func TestConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))

	_, err := NewConfigFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider(DefaultConfigPath)

	assert.NoError(t, provider.Validate(validConfig()))

	withSentry := validConfig()
	withSentry.Log.Format = "json"
	withSentry.Log.SentryDSN = "https://public@sentry.example.com/1"
	assert.NoError(t, provider.Validate(withSentry))

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: "app.name is required",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.App.Env = "qa" },
			wantErr: "app.env failed oneof",
		},
		{
			name:    "unknown source kind",
			mutate:  func(c *Config) { c.Source.Kind = "parquet" },
			wantErr: "source.kind failed oneof",
		},
		{
			name:    "latitude out of range",
			mutate:  func(c *Config) { c.Source.Lat = 91 },
			wantErr: "source.lat failed lte",
		},
		{
			name:    "forecast window too long",
			mutate:  func(c *Config) { c.Source.Days = 17 },
			wantErr: "source.days failed lte",
		},
		{
			name:    "non numeric port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: "server.port failed numeric",
		},
		{
			name: "sentry with console logs",
			mutate: func(c *Config) {
				c.Log.Format = "console"
				c.Log.SentryDSN = "https://public@sentry.example.com/1"
			},
			wantErr: "log.sentry_dsn is not allowed unless format is json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := provider.Validate(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.App.Env = "production"
	assert.False(t, config.IsDevelopment())
	assert.True(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	mockProvider = &MockConfigProvider{err: errors.New("boom")}
	_, err = NewConfigWithProvider(mockProvider)
	assert.EqualError(t, err, "boom")
}

func TestConfigFileLoading(t *testing.T) {
	// The bundled config.yaml sits next to this test
	config, err := NewConfigFromFile("config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "weather-report", config.App.Name)
	assert.Equal(t, SourceCSV, config.Source.Kind)
	assert.Equal(t, "data/weather.csv", config.Source.Path)
	assert.Equal(t, 52.52, config.Source.Lat)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
