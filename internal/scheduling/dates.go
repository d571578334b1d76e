package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// IsSameDay проверяет, что две даты относятся к одному и тому же календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsDateClosed проверяет, попадает ли день в один из периодов закрытия
// Границы периодов включительные: закрытие, заканчивающееся днем D,
// блокирует записи и на день D. Пересекающиеся периоды допустимы -
// достаточно попадания в любой из них
func IsDateClosed(day time.Time, closures []*domain.ClosurePeriod) bool {
	for _, closure := range closures {
		if closure.Contains(day) {
			return true
		}
	}
	return false
}

// FilterByDay возвращает записи, относящиеся к указанному календарному дню
func FilterByDay(appointments []*domain.Appointment, day time.Time) []*domain.Appointment {
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if IsSameDay(appt.Date, day) {
			filtered = append(filtered, appt)
		}
	}
	return filtered
}
