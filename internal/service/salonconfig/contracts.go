package salonconfig

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.SalonSlotsConfig, error)
	Upsert(ctx context.Context, cfg *domain.SalonSlotsConfig) (*domain.SalonSlotsConfig, error)
}

// AdminChecker проверяет, является ли пользователь администратором салона
type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
