package closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ClosureRepository интерфейс репозитория периодов закрытия
type ClosureRepository interface {
	Create(ctx context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error)
	GetActive(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error)
	GetOverlapping(ctx context.Context, startDate, endDate time.Time) ([]*domain.ClosurePeriod, error)
	Delete(ctx context.Context, id int64) error
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
