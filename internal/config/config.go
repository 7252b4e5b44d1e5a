// Package config loads the sitectl server configuration from YAML with .env
// and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sitecontent/pkg/logging"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	Admin   AdminConfig    `yaml:"admin"`
	Images  ImagesConfig   `yaml:"images"`
	Content ContentConfig  `yaml:"content"`
	Logging logging.Config `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address  string `yaml:"address" env:"SITECONTENT_ADDRESS"`
	BasePath string `yaml:"base_path" env:"SITECONTENT_BASE_PATH"`
}

// AdminConfig configures editor behavior.
type AdminConfig struct {
	Strict    bool          `yaml:"strict" env:"SITECONTENT_STRICT"`
	CopiedTTL time.Duration `yaml:"copied_ttl" env:"SITECONTENT_COPIED_TTL"`
	Locale    string        `yaml:"locale" env:"SITECONTENT_LOCALE"`
}

// ImagesConfig configures uploads and keyword search.
type ImagesConfig struct {
	SearchBaseURL  string `yaml:"search_base_url" env:"SITECONTENT_SEARCH_BASE_URL"`
	SearchWidth    int    `yaml:"search_width" env:"SITECONTENT_SEARCH_WIDTH"`
	SearchHeight   int    `yaml:"search_height" env:"SITECONTENT_SEARCH_HEIGHT"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"SITECONTENT_MAX_UPLOAD_BYTES"`
}

// ContentConfig locates the persisted content document.
type ContentConfig struct {
	Path string `yaml:"path" env:"SITECONTENT_CONTENT_PATH"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:  ":9876",
			BasePath: "/admin/content",
		},
		Admin: AdminConfig{
			CopiedTTL: 2 * time.Second,
			Locale:    "en",
		},
		Images: ImagesConfig{
			SearchBaseURL:  "https://source.unsplash.com",
			SearchWidth:    1600,
			SearchHeight:   900,
			MaxUploadBytes: 10 << 20,
		},
		Logging: logging.Config{Level: "info"},
	}
}

// Load reads path (optional) over the defaults, then applies .env files and
// SITECONTENT_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadEnvFiles(); err != nil {
		return Config{}, fmt.Errorf("load environment files: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnvToStruct(reflect.ValueOf(&cfg).Elem())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Address) == "" {
		errs = append(errs, errors.New("config: server.address is required"))
	}
	if c.Admin.CopiedTTL <= 0 {
		errs = append(errs, errors.New("config: admin.copied_ttl must be positive"))
	}
	if c.Images.SearchWidth <= 0 || c.Images.SearchHeight <= 0 {
		errs = append(errs, errors.New("config: images.search_width and search_height must be positive"))
	}
	if c.Images.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("config: images.max_upload_bytes must be positive"))
	}
	return errors.Join(errs...)
}

func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func applyEnvToStruct(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			applyEnvToStruct(field)
			continue
		}
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		if raw := os.Getenv(name); raw != "" {
			setFieldFromString(field, raw)
		}
	}
}

func setFieldFromString(field reflect.Value, raw string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			if d, err := time.ParseDuration(raw); err == nil {
				field.SetInt(int64(d))
			}
			return
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			field.SetInt(n)
		}
	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1", "yes":
			field.SetBool(true)
		default:
			field.SetBool(false)
		}
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(raw, ",")
			for i, p := range parts {
				parts[i] = strings.TrimSpace(p)
			}
			field.Set(reflect.ValueOf(parts))
		}
	}
}
