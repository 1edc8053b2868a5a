// Package config loads service configuration from a YAML file, a .env file,
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "config/config.yaml"

type Config struct {
	Server Server `yaml:"server" env-prefix:"SERVER_"`
	Remote Remote `yaml:"remote" env-prefix:"REMOTE_"`
	Viewer Viewer `yaml:"viewer" env-prefix:"VIEWER_"`
	Logger Logger `yaml:"logger" env-prefix:"LOGGER_"`
}

type Server struct {
	Addr            string        `yaml:"addr" env:"ADDR" env-default:":3000" validate:"required"`
	Mount           string        `yaml:"mount" env:"MOUNT" env-default:"/"`
	SessionTTL      time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"30m" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

// Remote describes the order service. An empty BaseURL falls back to the
// OpenAPI document's first server, then to http://localhost:8080.
type Remote struct {
	BaseURL   string        `yaml:"base_url" env:"BASE_URL" validate:"omitempty,url"`
	OpenAPI   string        `yaml:"openapi" env:"OPENAPI"`
	Operation string        `yaml:"operation" env:"OPERATION"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT" validate:"gte=0"`
}

type Viewer struct {
	Locale   string `yaml:"locale" env:"LOCALE" env-default:"ru" validate:"required"`
	Ordering string `yaml:"ordering" env:"ORDERING" env-default:"sequenced" validate:"oneof=sequenced last-resolved"`
	Catalog  string `yaml:"catalog" env:"CATALOG"`
	Theme    string `yaml:"theme" env:"THEME" env-default:"orderviewer"`
	Variant  string `yaml:"variant" env:"VARIANT"`
	LogoSVG  string `yaml:"logo_svg" env:"LOGO_SVG"`
}

type Logger struct {
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev prod"`
}

// Load reads path (when it exists) and the environment into a validated
// Config. Variables from a .env file in the working directory are exported
// first but never override the real environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	path = strings.TrimSpace(path)

	readFile := path != ""
	if readFile {
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: stat %s: %w", path, err)
			}
			readFile = false
		}
	}

	if readFile {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Usage describes every environment variable Config reads.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
