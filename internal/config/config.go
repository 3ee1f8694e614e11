package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Ninjas  NinjasConfig  `yaml:"ninjas"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Page    PageConfig    `yaml:"page"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type NinjasConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type FetchConfig struct {
	Mode        string `yaml:"mode"` // fallback | strict
	Count       int    `yaml:"count"`
	MaxAttempts int    `yaml:"max_attempts"`
}

type PageConfig struct {
	Decorate bool `yaml:"decorate"`
	Confetti bool `yaml:"confetti"`
}

type StorageConfig struct {
	DatabaseDSN string `yaml:"database_dsn"`
	RedisURL    string `yaml:"redis_url"`
	// Pisa la password de RedisURL si viene.
	RedisPassword string        `yaml:"redis_password"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// Defaults son los valores sin .env ni YAML.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Ninjas: NinjasConfig{
			BaseURL: "https://api.api-ninjas.com",
			Timeout: 5 * time.Second,
		},
		Fetch: FetchConfig{
			Mode:        "fallback",
			Count:       5,
			MaxAttempts: 5,
		},
		Page: PageConfig{
			Decorate: true,
			Confetti: true,
		},
		Storage: StorageConfig{
			CacheTTL: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "animal-encyclopedia",
		},
	}
}

// Load: defaults -> YAML opcional (CONFIG_FILE) -> variables de entorno
// (.env incluido vía godotenv).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)

	cfg.Ninjas.BaseURL = getEnv("API_NINJAS_BASE_URL", cfg.Ninjas.BaseURL)
	// VITE_API_NINJAS_KEY: nombre usado por el front en Vite.
	cfg.Ninjas.APIKey = getEnv("API_NINJAS_KEY", getEnv("VITE_API_NINJAS_KEY", cfg.Ninjas.APIKey))
	cfg.Ninjas.Timeout = getEnvDuration("HTTP_TIMEOUT", cfg.Ninjas.Timeout)

	cfg.Fetch.Mode = getEnv("FETCH_MODE", cfg.Fetch.Mode)
	cfg.Fetch.Count = getEnvInt("FETCH_COUNT", cfg.Fetch.Count)
	cfg.Fetch.MaxAttempts = getEnvInt("MAX_ATTEMPTS", cfg.Fetch.MaxAttempts)

	cfg.Page.Decorate = getEnvBool("DECORATE", cfg.Page.Decorate)
	cfg.Page.Confetti = getEnvBool("CONFETTI", cfg.Page.Confetti)

	cfg.Storage.DatabaseDSN = getEnv("DB_DSN", cfg.Storage.DatabaseDSN)
	cfg.Storage.RedisURL = getEnv("REDIS_URL", cfg.Storage.RedisURL)
	cfg.Storage.RedisPassword = getEnv("REDIS_PASSWORD", cfg.Storage.RedisPassword)
	cfg.Storage.CacheTTL = getEnvDuration("CACHE_TTL", cfg.Storage.CacheTTL)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.App = getEnv("APP_NAME", cfg.Logging.App)
}

func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(strings.TrimSpace(c.Fetch.Mode)) {
	case "fallback", "strict":
	default:
		errs = append(errs, fmt.Errorf("fetch mode %q: must be fallback or strict", c.Fetch.Mode))
	}
	if c.Fetch.Count < 1 {
		errs = append(errs, errors.New("fetch count must be >= 1"))
	}
	if c.Fetch.MaxAttempts < 1 {
		errs = append(errs, errors.New("max attempts must be >= 1"))
	}
	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("port required"))
	}

	return errors.Join(errs...)
}

// Addr devuelve ":<port>".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
