package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает все активные записи на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ClosureRepository интерфейс репозитория периодов закрытия
type ClosureRepository interface {
	GetActive(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.SalonSlotsConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
