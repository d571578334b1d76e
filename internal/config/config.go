package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrLoadConfig возвращается при ошибке чтения/разбора файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса, загружается из config.toml при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SalonConfig настройки салона
// Рабочие часы заданы конфигурацией, а не константами в коде: смена
// расписания не требует пересборки. Не заполненная таблица дает
// стандартное расписание domain.DefaultWeekSchedule
type SalonConfig struct {
	Timezone     string         `toml:"timezone"`
	AdminUserIDs []int64        `toml:"admin_user_ids"`
	Hours        map[string]Day `toml:"hours"`
}

// Day рабочее окно одного дня недели в конфигурации
type Day struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "salon-service",
			Path:        "/metrics",
		},
		Salon: SalonConfig{
			Timezone: "Europe/Berlin",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Salon.Timezone); err != nil {
		return fmt.Errorf("%w: salon.timezone=%q: %v", ErrInvalidConfig, c.Salon.Timezone, err)
	}
	if _, err := c.Salon.WeekSchedule(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс салона
func (s SalonConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// IsAdmin возвращает true, если пользователь входит в список администраторов
func (s SalonConfig) IsAdmin(userID int64) bool {
	for _, id := range s.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// weekdayKeys ключи таблицы [salon.hours] в конфигурации
var weekdayKeys = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WeekSchedule собирает расписание работы из конфигурации
// Пустая таблица - стандартное расписание; заданная таблица заменяет его
// целиком: упомянутые дни открыты, остальные закрыты
func (s SalonConfig) WeekSchedule() (domain.WeekSchedule, error) {
	if len(s.Hours) == 0 {
		return domain.DefaultWeekSchedule(), nil
	}

	var schedule domain.WeekSchedule
	for key, day := range s.Hours {
		weekday, ok := weekdayKeys[key]
		if !ok {
			return schedule, fmt.Errorf("%w: salon.hours key %q", ErrInvalidConfig, key)
		}

		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return schedule, fmt.Errorf("%w: salon.hours.%s.open=%q", ErrInvalidConfig, key, day.Open)
		}
		close, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return schedule, fmt.Errorf("%w: salon.hours.%s.close=%q", ErrInvalidConfig, key, day.Close)
		}
		if !open.IsBefore(close) {
			return schedule, fmt.Errorf("%w: salon.hours.%s: open must be before close", ErrInvalidConfig, key)
		}

		hours := domain.DayHours{IsOpen: true, Open: open, Close: close}
		switch weekday {
		case time.Monday:
			schedule.Monday = hours
		case time.Tuesday:
			schedule.Tuesday = hours
		case time.Wednesday:
			schedule.Wednesday = hours
		case time.Thursday:
			schedule.Thursday = hours
		case time.Friday:
			schedule.Friday = hours
		case time.Saturday:
			schedule.Saturday = hours
		case time.Sunday:
			schedule.Sunday = hours
		}
	}

	return schedule, nil
}
