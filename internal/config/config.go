package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig настройки админ-консоли.
// Code - это общий код доступа, сравниваемый с заголовком запроса.
// Это НЕ механизм безопасности, а удобный переключатель интерфейса;
// сервер не делает различий между пользователями.
type AdminConfig struct {
	Code string `toml:"code"`
}

// CatalogConfig каталог корта и еженедельных пакетов.
// Если секция пуста, используется встроенный каталог клуба.
type CatalogConfig struct {
	Court    *CourtConfig    `toml:"court"`
	Packages []PackageConfig `toml:"packages"`
}

// CourtConfig описание корта
type CourtConfig struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Type         string   `toml:"type"`
	PricePerHour float64  `toml:"price_per_hour"`
	Rating       float64  `toml:"rating"`
	Features     []string `toml:"features"`
}

// PackageConfig описание еженедельного пакета
type PackageConfig struct {
	ID             string  `toml:"id"`
	Name           string  `toml:"name"`
	Description    string  `toml:"description"`
	TimeRange      string  `toml:"time_range"`
	MaxPlayers     int     `toml:"max_players"`
	PricePerPerson float64 `toml:"price_per_person"`
	TargetWeekday  int     `toml:"target_weekday"` // 0 = воскресенье ... 6 = суббота
	Quorum         int     `toml:"quorum"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	for i, p := range c.Catalog.Packages {
		if p.ID == "" {
			return fmt.Errorf("catalog.packages[%d].id is required", i)
		}
		if p.MaxPlayers <= 0 {
			return fmt.Errorf("catalog.packages[%d].max_players must be positive", i)
		}
		if p.PricePerPerson < 0 {
			return fmt.Errorf("catalog.packages[%d].price_per_person must be non-negative", i)
		}
		if p.TargetWeekday < 0 || p.TargetWeekday > 6 {
			return fmt.Errorf("catalog.packages[%d].target_weekday must be in 0..6", i)
		}
	}
	return nil
}
