package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case переноса записи на другой слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	closureRepo     ClosureRepository
	configRepo      ConfigRepository
	txManager       TransactionManager
	engine          *scheduling.Engine
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	closureRepo ClosureRepository,
	configRepo ConfigRepository,
	txManager TransactionManager,
	engine *scheduling.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		closureRepo:     closureRepo,
		configRepo:      configRepo,
		txManager:       txManager,
		engine:          engine,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
//
// Проверка нового слота идет тем же путем, что и при создании, но
// переносимая запись исключается из поиска конфликтов (ExcludeID):
// иначе перенос "10:00 -> 10:15" конфликтовал бы сам с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.engine.Location())
	day := req.Date.Day(uc.engine.Location())

	uc.logger.Info("RescheduleAppointment: id=%d, userID=%d, newDate=%s, newStart=%s",
		req.AppointmentID, req.UserID, day.Format(domain.DateFormat), req.StartTime)

	var moved *domain.Appointment

	// 2. Сериализуемая транзакция: чтение записи, проверка слота, перенос
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Перенести можно только свою запись
		if appt.UserID != req.UserID {
			return ErrAccessDenied
		}

		if !appt.CanBeRescheduled() {
			return fmt.Errorf("%w: status=%s", ErrCannotReschedule, appt.Status)
		}

		// 2.1. Конфигурация слотов (отсутствующая строка - значения по умолчанию)
		cfg, err := uc.configRepo.Get(ctx)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		if cfg == nil {
			cfg = domain.DefaultSlotsConfig()
		}

		// 2.2. Проверка глубины записи вперед
		if err := validateAdvanceLimit(day, now, cfg.AdvanceBookingDays); err != nil {
			return err
		}

		// 2.3. Периоды закрытия
		closures, err := uc.closureRepo.GetActive(ctx, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		// 2.4. Записи целевого дня под блокировкой FOR UPDATE
		appointments, err := uc.appointmentRepo.GetByDate(ctx, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.5. Проверка нового слота с исключением переносимой записи
		if err := uc.engine.ValidateBooking(scheduling.BookingRequest{
			Date:                    req.Date,
			StartTime:               req.StartTime,
			DurationMinutes:         appt.DurationMinutes,
			BufferMinutes:           cfg.BufferMinutes,
			MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
			ExcludeID:               ptr.Ptr(appt.ID),
			Now:                     now,
		}, appointments, closures); err != nil {
			var confErr *scheduling.ConflictError
			if errors.As(err, &confErr) {
				return errors.Join(ErrSlotNotAvailable, confErr)
			}
			return err
		}

		endTime, err := req.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.Reschedule(ctx, appt.ID, day, req.StartTime, endTime); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		appt.Date = day
		appt.StartTime = req.StartTime
		appt.EndTime = endTime
		moved = appt

		return nil
	})
	if txErr != nil {
		uc.logger.Error("RescheduleAppointment: failed for id=%d: %v", req.AppointmentID, txErr)
		return nil, txErr
	}

	uc.logger.Info("RescheduleAppointment: moved id=%d to %s %s",
		moved.ID, moved.Date.Format(domain.DateFormat), moved.StartTime)

	return &Response{
		ID:              moved.ID,
		UserID:          moved.UserID,
		ServiceType:     moved.ServiceType,
		Date:            moved.Date,
		StartTime:       moved.StartTime,
		EndTime:         moved.EndTime,
		DurationMinutes: moved.DurationMinutes,
		Status:          string(moved.Status),
		ServiceName:     moved.ServiceName,
		ServicePrice:    moved.ServicePrice,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
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
