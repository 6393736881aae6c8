package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, которые перекрывают значения из файла
const (
	EnvDatabaseDSN = "TUTORS_DATABASE_DSN"
	EnvHTTPPort    = "TUTORS_HTTP_PORT"
	EnvLogLevel    = "TUTORS_LOG_LEVEL"
	EnvCSRFKey     = "TUTORS_CSRF_KEY"
)

// CSRFKeyLength длина ключа подписи CSRF токенов в байтах
const CSRFKeyLength = 32

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Site     SiteConfig     `toml:"site"`
	Security SecurityConfig `toml:"security"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	URL             string `toml:"url"` // если задан, используется вместо полей выше
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SiteConfig настройки страниц сайта
type SiteConfig struct {
	FeaturedTutors int `toml:"featured_tutors"`
	// LegacyChoiceStatus при неизвестном варианте в форме заявки отвечать 404, а не показывать форму с ошибкой
	LegacyChoiceStatus bool `toml:"legacy_choice_status"`
}

// SecurityConfig защита HTML форм от CSRF
type SecurityConfig struct {
	// CSRFKey ключ в hex (64 символа). Пустой: ключ генерируется при старте, токены живут до перезапуска
	CSRFKey string `toml:"csrf_key"`
	// SecureCookie cookie только по HTTPS, проверка Referer для запросов без Origin
	SecureCookie bool `toml:"secure_cookie"`
}

// CSRFAuthKey декодированный ключ CSRF. nil, если ключ не задан
func (s SecurityConfig) CSRFAuthKey() ([]byte, error) {
	if s.CSRFKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.CSRFKey)
	if err != nil {
		return nil, fmt.Errorf("config: security.csrf_key is not hex: %w", err)
	}
	if len(key) != CSRFKeyLength {
		return nil, fmt.Errorf("config: security.csrf_key must be %d bytes, got %d", CSRFKeyLength, len(key))
	}
	return key, nil
}

// Default конфигурация по умолчанию: локальный PostgreSQL, порт 8080
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "tutors",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "tutor-service",
		},
		Site: SiteConfig{
			FeaturedTutors: 6,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Отсутствующий файл не ошибка. Затем применяются .env и переменные окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		c.Database.URL = dsn
	}

	if port := os.Getenv(EnvHTTPPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a number: %w", EnvHTTPPort, port, err)
		}
		c.Server.HTTPPort = p
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logs.Level = level
	}

	if key := os.Getenv(EnvCSRFKey); key != "" {
		c.Security.CSRFKey = key
	}

	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return errors.New("config: database.host and database.dbname are required")
	}

	if c.Site.FeaturedTutors <= 0 {
		return fmt.Errorf("config: invalid site.featured_tutors %d", c.Site.FeaturedTutors)
	}

	if _, err := c.Security.CSRFAuthKey(); err != nil {
		return err
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
