package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается при неизвестном типе услуги
	// Неизвестная услуга - ошибка, а не длительность по умолчанию
	ErrServiceNotFound = errors.New("get_available_slots: unknown service type")

	// ErrInvalidDuration возвращается при некорректной явной длительности
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
