package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
)

// UseCase use case создания записи на услугу
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

// Execute выполняет use case создания записи
//
// Проверка доступности слота выполняется ЗАНОВО внутри сериализуемой
// транзакции: снимок, который клиент видел в списке доступности, мог
// устареть. GetByDate внутри транзакции блокирует записи дня (FOR UPDATE),
// поэтому два конкурентных запроса на один слот не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (включая формат времени)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем услугу и длительность
	svc, duration, err := resolveDuration(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: duration resolution failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.engine.Location())
	day := req.Date.Day(uc.engine.Location())

	uc.logger.Info("CreateAppointment: userID=%d, service=%s, date=%s, start=%s",
		req.UserID, req.ServiceType, day.Format(domain.DateFormat), req.StartTime)

	var created *domain.Appointment

	// 3. Сериализуемая транзакция: повторная проверка слота + вставка
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 3.1. Конфигурация слотов (отсутствующая строка - значения по умолчанию)
		cfg, err := uc.configRepo.Get(ctx)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		if cfg == nil {
			cfg = domain.DefaultSlotsConfig()
		}

		// 3.2. Проверка глубины записи вперед
		if err := validateAdvanceLimit(day, now, cfg.AdvanceBookingDays); err != nil {
			return err
		}

		// 3.3. Периоды закрытия
		closures, err := uc.closureRepo.GetActive(ctx, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		// 3.4. Записи дня под блокировкой FOR UPDATE
		appointments, err := uc.appointmentRepo.GetByDate(ctx, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.5. Авторитетная проверка слота движком
		if err := uc.engine.ValidateBooking(scheduling.BookingRequest{
			Date:                    req.Date,
			StartTime:               req.StartTime,
			DurationMinutes:         duration,
			BufferMinutes:           cfg.BufferMinutes,
			MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
			Now:                     now,
		}, appointments, closures); err != nil {
			var confErr *scheduling.ConflictError
			if errors.As(err, &confErr) {
				// errors.Join сохраняет и сентинел, и детали конфликта
				return errors.Join(ErrSlotNotAvailable, confErr)
			}
			return err
		}

		// 3.6. Конец услуги в пределах дня (проверено движком), вставка
		endTime, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		created, err = uc.appointmentRepo.Create(ctx, &domain.Appointment{
			UserID:          req.UserID,
			ServiceType:     svc.Type,
			Date:            day,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		uc.logger.Error("CreateAppointment: failed: %v", txErr)
		return nil, txErr
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for userID=%d",
		created.ID, created.UserID)

	return toResponse(created), nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		UserID:          appt.UserID,
		ServiceType:     appt.ServiceType,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		ClientName:      appt.ClientName,
		ClientPhone:     appt.ClientPhone,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
