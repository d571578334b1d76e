package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается при неизвестном типе услуги
	ErrServiceNotFound = errors.New("create_appointment: unknown service type")

	// ErrInvalidDuration возвращается при некорректной явной длительности
	ErrInvalidDuration = errors.New("create_appointment: invalid duration")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот конфликтует с существующими записями
	// Детали конфликта доступны через errors.As к *scheduling.ConflictError
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
