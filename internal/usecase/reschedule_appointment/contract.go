package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// GetByDate внутри транзакции блокирует выбранные строки (FOR UPDATE)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Reschedule(ctx context.Context, id int64, date time.Time, startTime, endTime types.TimeString) error
}

// ClosureRepository интерфейс репозитория периодов закрытия
type ClosureRepository interface {
	GetActive(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.SalonSlotsConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
