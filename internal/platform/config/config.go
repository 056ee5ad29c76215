package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Listing   ListingConfig   `mapstructure:"listing"`
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
	Identity  IdentityConfig  `mapstructure:"identity"`
	Retry     RetryConfig     `mapstructure:"retry"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (s ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(s.Port, ":")
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	// vacío => repos in-memory
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ListingConfig struct {
	// vacío => el feed lee el catálogo local sin pasar por HTTP
	BaseURL string        `mapstructure:"base_url"`
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type GeocodingConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	Cache   struct {
		Enabled bool          `mapstructure:"enabled"`
		TTL     time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
}

type IdentityConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	APIKeyHeader string        `mapstructure:"api_key_header"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

func (c IdentityConfig) Enabled() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

type RetryConfig struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Multiplier   float64       `mapstructure:"multiplier"`
}

// envBindings mantiene los nombres de env históricos (PORT, DB_DSN, LOG_LEVEL...).
var envBindings = map[string]string{
	"app.name":                "APP_NAME",
	"server.port":             "PORT",
	"logging.level":           "LOG_LEVEL",
	"logging.format":          "LOG_FORMAT",
	"database.dsn":            "DB_DSN",
	"redis.address":           "REDIS_ADDR",
	"redis.password":          "REDIS_PASSWORD",
	"redis.db":                "REDIS_DB",
	"listing.base_url":        "LISTING_BASE_URL",
	"listing.path":            "LISTING_PATH",
	"listing.timeout":         "LISTING_TIMEOUT",
	"geocoding.base_url":      "GEOCODING_BASE_URL",
	"geocoding.api_key":       "GEOCODING_API_KEY",
	"geocoding.timeout":       "GEOCODING_TIMEOUT",
	"geocoding.cache.enabled": "GEOCODING_CACHE_ENABLED",
	"geocoding.cache.ttl":     "GEOCODING_CACHE_TTL",
	"identity.base_url":       "IDENTITY_BASE_URL",
	"identity.api_key":        "IDENTITY_API_KEY",
	"identity.api_key_header": "IDENTITY_API_KEY_HEADER",
	"retry.max_attempts":      "RETRY_MAX_ATTEMPTS",
	"retry.initial_delay":     "RETRY_INITIAL_DELAY",
	"retry.multiplier":        "RETRY_MULTIPLIER",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-adoption")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("listing.path", "/pets")
	// listing y geocoding sin timeout propio: los acota el ctx del fetch (-1 => ninguno)
	v.SetDefault("listing.timeout", time.Duration(-1))
	v.SetDefault("geocoding.base_url", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("geocoding.timeout", time.Duration(-1))
	v.SetDefault("geocoding.cache.enabled", false)
	v.SetDefault("geocoding.cache.ttl", 24*time.Hour)
	v.SetDefault("identity.api_key_header", "X-Api-Key")
	v.SetDefault("identity.timeout", 5*time.Second)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.initial_delay", time.Second)
	v.SetDefault("retry.multiplier", 2.0)
}

// Load arma la config en este orden: defaults, config.yaml (opcional), .env, env vars.
func Load() (*Config, error) {
	loadEnvFile()
	return LoadFrom(viper.New(), ".", "./configs")
}

// LoadFrom permite inyectar un viper y los paths donde buscar config.yaml (tests).
func LoadFrom(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if cfg.Retry.MaxAttempts < 0 {
		return errors.New("retry.max_attempts must be >= 0")
	}
	if cfg.Retry.Multiplier < 0 {
		return errors.New("retry.multiplier must be >= 0")
	}
	if cfg.Geocoding.Cache.Enabled && strings.TrimSpace(cfg.Redis.Address) == "" {
		return errors.New("geocoding.cache.enabled requires redis.address")
	}
	return nil
}

// loadEnvFile busca un .env subiendo directorios hasta el go.mod (útil corriendo tests).
func loadEnvFile() {
	candidates := []string{".env"}
	if root := findProjectRoot(); root != "" {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
