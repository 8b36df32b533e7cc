package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DriverMemory deja el storage en memoria (sin DB).
const DriverMemory = "memory"

type Config struct {
	Port    string `yaml:"port"`
	AppName string `yaml:"app_name"`

	DB  DB  `yaml:"db"`
	Log Log `yaml:"log"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DB struct {
	Driver      string `yaml:"driver"` // memory | sqlite | pgx
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		AppName:         "shelter-adoptions",
		DB:              DB{Driver: DriverMemory, AutoMigrate: true},
		Log:             Log{Level: "info", Format: "text"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load arma la config en capas: defaults, archivo YAML (path o CONFIG_FILE)
// y variables de entorno. Antes carga .env si existe.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.AppName, "APP_NAME")
	setString(&c.DB.Driver, "DB_DRIVER")
	setString(&c.DB.DSN, "DB_DSN")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE: %w", err)
		}
		c.DB.AutoMigrate = b
	}
	if v := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}

	// DB_DSN sin DB_DRIVER: se asume Postgres, como antes.
	if os.Getenv("DB_DRIVER") == "" && os.Getenv("DB_DSN") != "" && c.DB.Driver == DriverMemory {
		c.DB.Driver = "pgx"
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}
	switch strings.ToLower(c.DB.Driver) {
	case DriverMemory, "sqlite", "sqlite3":
	case "pgx", "postgres", "postgresql":
		if strings.TrimSpace(c.DB.DSN) == "" {
			return errors.New("db dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be > 0")
	}
	return nil
}

// UsesMemory indica si no hay que abrir una DB.
func (c Config) UsesMemory() bool {
	return strings.EqualFold(c.DB.Driver, DriverMemory)
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
