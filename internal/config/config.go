// config предоставляет структуру конфигурации social-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	S3       S3Config       `yaml:"s3"`
	Media    MediaConfig    `yaml:"media"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50085"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES" env-required:"true"`
}

// RedisConfig — кэш отозванных сессий.
type RedisConfig struct {
	URL    string `yaml:"url" env:"REDIS_URL" env-required:"true"`
	Prefix string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"social:session:"`
}

// AuthConfig — проверка сессионных токенов провайдера идентичности.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer     string        `yaml:"issuer" env:"ISSUER" env-default:"auth-service"`
	Audience   []string      `yaml:"audience" env:"AUDIENCE" env-separator:"," env-default:"social-service"`
	Leeway     time.Duration `yaml:"leeway" env:"JWT_LEEWAY" env-default:"30s"`
	CookieName string        `yaml:"cookie_name" env:"AUTH_COOKIE" env-default:"auth_session"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"720h"`
}

type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-required:"true"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// MediaConfig — ограничения вложений и параметры уборщика.
type MediaConfig struct {
	MaxSizeBytes        int64         `yaml:"max_size_bytes" env:"MEDIA_MAX_SIZE_BYTES" env-default:"20971520"`
	AllowedContentTypes []string      `yaml:"allowed_content_types" env:"MEDIA_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp,video/mp4"`
	OrphanTTL           time.Duration `yaml:"orphan_ttl" env:"MEDIA_ORPHAN_TTL" env-default:"24h"`
	JanitorInterval     time.Duration `yaml:"janitor_interval" env:"MEDIA_JANITOR_INTERVAL" env-default:"1h"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", p, err)
		}

		return &cfg, cfg.validate()
	}

	switch {
	case path != "":
		return finish(readFile(path))
	case os.Getenv("CONFIG_PATH") != "":
		return finish(readFile(os.Getenv("CONFIG_PATH")))
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return finish(readFile("local.yaml"))
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return finish(&cfg, cfg.validate())
}

// finish отбрасывает частично заполненный конфиг при ошибке.
func finish(cfg *Config, err error) (*Config, error) {
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local|dev|prod, got %q", c.Env)
	}

	if err := validatePort("http.port", c.HTTP.Port); err != nil {
		return err
	}

	if err := validatePort("metrics.port", c.Metrics.Port); err != nil {
		return err
	}

	if c.HTTP.Addr() == c.Metrics.Addr() {
		return fmt.Errorf("http and metrics must listen on different addresses")
	}

	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}

	if c.Auth.Leeway < 0 {
		return fmt.Errorf("auth.leeway must be >= 0")
	}

	if c.S3.Endpoint == "" || c.S3.Bucket == "" {
		return fmt.Errorf("s3.endpoint and s3.bucket are required")
	}

	if c.S3.RootUser == "" || c.S3.RootPassword == "" {
		return fmt.Errorf("s3.root_user and s3.root_password are required")
	}

	if c.S3.PresignTTL <= 0 {
		return fmt.Errorf("s3.presign_ttl must be > 0")
	}

	if c.Media.MaxSizeBytes <= 0 {
		return fmt.Errorf("media.max_size_bytes must be > 0")
	}

	if len(c.Media.AllowedContentTypes) == 0 {
		return fmt.Errorf("media.allowed_content_types must not be empty")
	}

	if c.Media.OrphanTTL <= 0 || c.Media.JanitorInterval <= 0 {
		return fmt.Errorf("media.orphan_ttl and media.janitor_interval must be > 0")
	}

	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}

	return nil
}

func validatePort(name, port string) error {
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("%s must be a valid TCP port (1..65535)", name)
	}

	return nil
}
