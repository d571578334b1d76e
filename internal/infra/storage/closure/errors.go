package closure

import "errors"

var (
	// ErrClosureNotFound возвращается, когда период закрытия не найден
	ErrClosureNotFound = errors.New("closure.repository: closure period not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closure.repository: failed to scan row")
)
