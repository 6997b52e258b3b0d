// Package config holds the persistent application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Data sources for the fixture store.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the persistent application configuration
type Config struct {
	Data    DataConfig    `json:"data"`
	UI      UIConfig      `json:"ui"`
	Logging LoggingConfig `json:"logging"`

	path string
}

// DataConfig selects where fixtures are loaded from.
type DataConfig struct {
	Source       string `json:"source" validate:"oneof=embedded file sqlite"`
	FixturesPath string `json:"fixtures_path,omitempty" validate:"required_if=Source file"`
	DBPath       string `json:"db_path,omitempty" validate:"required_if=Source sqlite"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	NameWidth int  `json:"name_width" validate:"gte=8,lte=120"`
	ShowIcons bool `json:"show_icons"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `json:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `json:"dir,omitempty"` // Defaults to ~/.catalog/logs
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source: SourceEmbedded,
		},
		UI: UIConfig{
			NameWidth: 32,
			ShowIcons: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the path to the config file.
// CATALOG_CONFIG overrides the default ~/.catalog/config.json.
func ConfigPath() string {
	if p := os.Getenv("CATALOG_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".catalog", "config.json")
}

// Load reads config from ConfigPath, or returns defaults
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path. A missing file yields defaults.
// Environment overrides are applied in both cases.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.AutoPopulateFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to the path it was loaded from (ConfigPath by default).
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AutoPopulateFromEnv applies CATALOG_* environment overrides.
func (c *Config) AutoPopulateFromEnv() {
	if p := os.Getenv("CATALOG_FIXTURES"); p != "" {
		c.Data.Source = SourceFile
		c.Data.FixturesPath = p
	}
	if p := os.Getenv("CATALOG_DB"); p != "" {
		c.Data.Source = SourceSQLite
		c.Data.DBPath = p
	}
	if l := os.Getenv("CATALOG_LOG_LEVEL"); l != "" {
		c.Logging.Level = strings.ToLower(l)
	}
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		_, ns, _ := strings.Cut(fe.Namespace(), ".")
		msgs = append(msgs, fmt.Sprintf("%s failed %s%s", ns, fe.Tag(), param(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func param(fe validator.FieldError) string {
	if fe.Param() == "" {
		return ""
	}
	return "=" + fe.Param()
}
