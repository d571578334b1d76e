package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается при неположительной или слишком большой длительности
	ErrInvalidDuration = errors.New("scheduling: invalid duration")

	// ErrInvalidInterval возвращается при некорректном шаге сетки слотов
	ErrInvalidInterval = errors.New("scheduling: invalid slot interval")

	// ErrDateClosed возвращается, когда дата закрыта (выходной или период закрытия салона)
	ErrDateClosed = errors.New("scheduling: salon is closed on this date")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("scheduling: date is in the past")

	// ErrOutsideBusinessHours возвращается, когда запрошенный слот не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("scheduling: slot is outside business hours")

	// ErrTooLateToBook возвращается при нарушении минимального времени до записи
	ErrTooLateToBook = errors.New("scheduling: too late to book this slot")
)

// ConflictError конфликт с существующими записями
// Возвращается как данные, а не как исключительная ситуация: вызывающая
// сторона показывает пользователю, с чем именно пересекся запрошенный слот
type ConflictError struct {
	Conflicts []*domain.Appointment
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 1 {
		c := e.Conflicts[0]
		return fmt.Sprintf("scheduling: slot conflicts with appointment id=%d (%s-%s)",
			c.ID, c.StartTime, c.EndTime)
	}
	return fmt.Sprintf("scheduling: slot conflicts with %d appointments", len(e.Conflicts))
}
