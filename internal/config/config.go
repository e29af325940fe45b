// Package config загружает настройки клиента: YAML файл, затем переменные окружения.
// Флаги командной строки применяются поверх в пакете cli.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL = "http://localhost:8080/api/"
	DefaultDBPath    = "resorg-client.db"
	DefaultTimeout   = 30 * time.Second
	DefaultFeedTTL   = 10 * time.Minute

	configFileName = ".resorg.yaml"
)

// Переменные окружения
const (
	EnvServer   = "RESORG_SERVER"
	EnvFeedURL  = "RESORG_FEED_URL"
	EnvDB       = "RESORG_DB"
	EnvLogLevel = "RESORG_LOG_LEVEL"
)

// Config настройки клиента
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Feed    FeedConfig    `yaml:"feed"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig REST бэкенд
type ServerConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"` // длительность в формате time.ParseDuration
}

// FeedConfig внешняя лента рекомендаций
type FeedConfig struct {
	URL      string `yaml:"url"`
	CacheTTL string `yaml:"cache_ttl"`
}

// StorageConfig локальная база bbolt
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig уровень и формат логов
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: DefaultTimeout.String(),
		},
		Feed: FeedConfig{
			CacheTTL: DefaultFeedTTL.String(),
		},
		Storage: StorageConfig{
			Path: DefaultDBPath,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath путь к файлу настроек в домашнем каталоге
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// Load читает YAML файл поверх значений по умолчанию.
// Отсутствующий файл не ошибка. Переменные окружения применяются в конце.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// остаются значения по умолчанию
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save записывает настройки в YAML файл
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvServer); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv(EnvFeedURL); v != "" {
		c.Feed.URL = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// GetTimeout таймаут HTTP запросов, DefaultTimeout при пустом или неверном значении
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// GetFeedTTL время жизни ленты рекомендаций в памяти
func (c *Config) GetFeedTTL() time.Duration {
	d, err := time.ParseDuration(c.Feed.CacheTTL)
	if err != nil || d <= 0 {
		return DefaultFeedTTL
	}
	return d
}

// Validate проверяет настройки перед запуском
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server url must use http or https scheme")
	}
	if u.Host == "" {
		return fmt.Errorf("server url must contain a host")
	}

	if c.Server.Timeout != "" {
		if _, err := time.ParseDuration(c.Server.Timeout); err != nil {
			return fmt.Errorf("invalid server timeout: %w", err)
		}
	}
	if c.Feed.CacheTTL != "" {
		if _, err := time.ParseDuration(c.Feed.CacheTTL); err != nil {
			return fmt.Errorf("invalid feed cache ttl: %w", err)
		}
	}

	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage path cannot be empty")
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (expected text or json)", c.Logging.Format)
	}

	return nil
}

// ParseLevel разбирает уровень логирования. Пустая строка означает warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// NewLogger создает slog логгер с уровнем и форматом из настроек
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
