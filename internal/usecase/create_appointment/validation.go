package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	// Формат времени проверяется немедленно: неразборчивое время не
	// должно доходить до движка планирования
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.ClientPhone != nil && len(*req.ClientPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long", ErrInvalidInput)
	}

	return nil
}

// resolveDuration определяет итоговую длительность услуги
// Явная длительность из запроса имеет приоритет над каталожной, но
// обязана быть кратной 5 минутам и попадать в допустимый диапазон.
// Неизвестный тип услуги - ошибка, а не длительность по умолчанию
func resolveDuration(req *Request) (domain.SalonService, int, error) {
	svc, ok := domain.ServiceByType(req.ServiceType)
	if !ok {
		return domain.SalonService{}, 0, fmt.Errorf("%w: %q", ErrServiceNotFound, req.ServiceType)
	}

	if req.DurationMinutes == 0 {
		return svc, svc.DurationMinutes, nil
	}

	if req.DurationMinutes < domain.MinServiceDuration ||
		req.DurationMinutes > domain.MaxServiceDuration ||
		req.DurationMinutes%5 != 0 {
		return domain.SalonService{}, 0, fmt.Errorf("%w: %d", ErrInvalidDuration, req.DurationMinutes)
	}

	return svc, req.DurationMinutes, nil
}

// validateAdvanceLimit проверяет ограничение на глубину записи вперед
// advanceBookingDays = 0 означает отсутствие ограничения
func validateAdvanceLimit(day time.Time, now time.Time, advanceBookingDays int) error {
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	if day.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
