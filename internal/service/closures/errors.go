package closures

import "errors"

var (
	// ErrClosureNotFound возвращается, когда период закрытия не найден
	ErrClosureNotFound = errors.New("closure period not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrClosureOverlaps возвращается при попытке создать пересекающийся период
	ErrClosureOverlaps = errors.New("closure period overlaps an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
