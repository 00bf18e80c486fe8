package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

// Source kinds.
const (
	SourceCSV       = "csv"
	SourceXLSX      = "xlsx"
	SourceOpenMeteo = "open-meteo"
)

type Config struct {
	App    AppConfig    `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Source SourceConfig `yaml:"source"`
}

type AppConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version" validate:"required"`
	Env     string `yaml:"env" validate:"oneof=development test staging production"`
}

type ServerConfig struct {
	Port         string `yaml:"port" validate:"required,numeric"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true" validate:"gte=0"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true" validate:"gte=0"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true" validate:"gte=0"`
}

type LogConfig struct {
	Level     string `yaml:"level" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" validate:"oneof=json console"`
	// The Sentry hook decodes JSON log lines, so a DSN needs the json format.
	SentryDSN string `yaml:"sentry_dsn,omitempty" split_words:"true" validate:"excluded_unless=Format json"`
}

// SourceConfig selects where weather records are loaded from.
type SourceConfig struct {
	Kind    string  `yaml:"kind" validate:"oneof=csv xlsx open-meteo"`
	Path    string  `yaml:"path,omitempty"`
	Sheet   string  `yaml:"sheet,omitempty"`
	BaseURL string  `yaml:"base_url,omitempty" split_words:"true" validate:"omitempty,url"`
	Lat     float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Days    int     `yaml:"days" validate:"gte=1,lte=16"`
	Timeout int     `yaml:"timeout" validate:"gte=1"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file and lets environment variables override it.
type FileConfigProvider struct {
	path     string
	validate *validator.Validate
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &FileConfigProvider{
		path:     path,
		validate: v,
	}
}

// Default returns the configuration used when neither file nor environment set a value.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-report",
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
			Days:    7,
			Timeout: 30,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// .env values never replace variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile merges the YAML file into cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	err := p.validate.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		// Namespace is "Config.app.name"
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
			continue
		case "excluded_unless":
			other, value, _ := strings.Cut(fe.Param(), " ")
			msgs = append(msgs, fmt.Sprintf("%s is not allowed unless %s is %s", field, strings.ToLower(other), value))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s validation (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// NewConfig loads the configuration from DefaultConfigPath and the environment.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

// NewConfigFromFile is NewConfig with a custom file path.
func NewConfigFromFile(path string) (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
