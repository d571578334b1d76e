package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Engine движок доступности - единая точка принятия решений планирования
// Полностью stateless: всё "состояние" (записи, периоды закрытия,
// конфигурация слотов) передается снимком на каждый вызов. Движок
// НИКОГДА не кэширует снимки - устаревшие данные напрямую ведут к
// двойному бронированию, свежесть обеспечивает вызывающая сторона
type Engine struct {
	schedule domain.WeekSchedule
	location *time.Location
}

// NewEngine создает движок с расписанием салона и его часовым поясом
func NewEngine(schedule domain.WeekSchedule, location *time.Location) *Engine {
	return &Engine{
		schedule: schedule,
		location: location,
	}
}

// Location возвращает часовой пояс салона
func (e *Engine) Location() *time.Location {
	return e.location
}

// Schedule возвращает расписание работы салона
func (e *Engine) Schedule() domain.WeekSchedule {
	return e.schedule
}

// SlotRequest параметры запроса доступных слотов
type SlotRequest struct {
	Date                    types.FlexDate // Дата в любом из принимаемых форматов
	DurationMinutes         int            // Длительность услуги
	IntervalMinutes         int            // Шаг сетки слотов
	BufferMinutes           int            // Зазор вокруг существующих записей
	MinBookingNoticeMinutes int            // Минимальное время до начала (для сегодняшних слотов)
	Now                     time.Time      // Текущее время (инъецируется для тестируемости)
}

// BookingRequest параметры проверки конкретного слота перед фиксацией
type BookingRequest struct {
	Date                    types.FlexDate
	StartTime               types.TimeString
	DurationMinutes         int
	BufferMinutes           int
	MinBookingNoticeMinutes int
	ExcludeID               *int64 // ID переносимой записи (пропускается при проверке конфликтов)
	Now                     time.Time
}

// AvailableSlots возвращает отсортированный список свободных времён начала
// для даты/длительности с учетом рабочих часов, периодов закрытия,
// существующих записей и буфера
//
// Закрытая дата, прошедшая дата и нерабочий день недели дают пустой
// список, а не ошибку: для вызывающей стороны "нет слотов" и "закрыто"
// неразличимы (см. GET /closures для явной проверки)
func (e *Engine) AvailableSlots(
	req SlotRequest,
	existing []*domain.Appointment,
	closures []*domain.ClosurePeriod,
) ([]types.TimeString, error) {
	if req.Date.IsZero() {
		return nil, types.ErrInvalidDateFormat
	}

	// Единственная точка нормализации даты: обычная дата, RFC3339
	// timestamp и {seconds} сводятся к одному локальному дню
	day := req.Date.Day(e.location)
	now := req.Now.In(e.location)

	if IsDateClosed(day, closures) {
		return []types.TimeString{}, nil
	}

	if IsDateInPast(day, now) {
		return []types.TimeString{}, nil
	}

	hours := e.schedule.HoursFor(day.Weekday())
	if !hours.IsOpen {
		return []types.TimeString{}, nil
	}

	candidates, err := GenerateCandidates(hours, req.DurationMinutes, req.IntervalMinutes)
	if err != nil {
		return nil, err
	}

	// Для сегодняшней даты отбрасываем слоты, нарушающие минимальное
	// время до записи
	if IsSameDay(day, now) {
		candidates = filterByNotice(candidates, now, req.MinBookingNoticeMinutes)
	}

	dayAppointments := FilterByDay(existing, day)

	available := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		conflicts, err := FindConflicts(candidate, req.DurationMinutes, dayAppointments, nil, req.BufferMinutes)
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			available = append(available, candidate)
		}
	}

	return available, nil
}

// ValidateBooking авторитетная проверка конкретного слота
// Выполняется повторно в момент фиксации записи ВНУТРИ сериализуемой
// транзакции хранилища: список доступности, прочитанный раньше, мог
// устареть из-за конкурентной записи. Конфликт возвращается как
// *ConflictError с пересекающимися записями
func (e *Engine) ValidateBooking(
	req BookingRequest,
	existing []*domain.Appointment,
	closures []*domain.ClosurePeriod,
) error {
	if req.Date.IsZero() {
		return types.ErrInvalidDateFormat
	}
	if err := req.StartTime.Validate(); err != nil {
		return err
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, req.DurationMinutes)
	}

	day := req.Date.Day(e.location)
	now := req.Now.In(e.location)

	if IsDateClosed(day, closures) {
		return ErrDateClosed
	}

	if IsDateInPast(day, now) {
		return ErrDateInPast
	}

	hours := e.schedule.HoursFor(day.Weekday())
	if !hours.IsOpen {
		return ErrDateClosed
	}

	// Услуга целиком обязана поместиться в рабочее окно; заодно это
	// исключает слоты с переходом конца через полночь
	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return err
	}
	openMin, err := hours.Open.Minutes()
	if err != nil {
		return err
	}
	closeMin, err := hours.Close.Minutes()
	if err != nil {
		return err
	}
	if startMin < openMin || startMin+req.DurationMinutes > closeMin {
		return ErrOutsideBusinessHours
	}

	if IsSameDay(day, now) {
		nowMin := now.Hour()*60 + now.Minute()
		if startMin < nowMin+req.MinBookingNoticeMinutes {
			return fmt.Errorf("%w: must book at least %d minutes in advance",
				ErrTooLateToBook, req.MinBookingNoticeMinutes)
		}
	}

	dayAppointments := FilterByDay(existing, day)

	conflicts, err := FindConflicts(req.StartTime, req.DurationMinutes, dayAppointments, req.ExcludeID, req.BufferMinutes)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}

	return nil
}

// filterByNotice оставляет слоты, начинающиеся не раньше now + notice
func filterByNotice(candidates []types.TimeString, now time.Time, noticeMinutes int) []types.TimeString {
	minAllowed := now.Hour()*60 + now.Minute() + noticeMinutes

	filtered := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		startMin, err := candidate.Minutes()
		if err != nil {
			continue
		}
		if startMin >= minAllowed {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
