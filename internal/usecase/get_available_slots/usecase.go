package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
)

// UseCase use case получения доступных слотов для записи
// Точка входа доступности: движок планирования получает СВЕЖИЙ снимок
// записей и периодов закрытия на каждый вызов, ничего не кэшируя
type UseCase struct {
	appointmentRepo AppointmentRepository
	closureRepo     ClosureRepository
	configRepo      ConfigRepository
	engine          *scheduling.Engine
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	closureRepo ClosureRepository,
	configRepo ConfigRepository,
	engine *scheduling.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		closureRepo:     closureRepo,
		configRepo:      configRepo,
		engine:          engine,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем услугу и длительность (неизвестная услуга - ошибка)
	svc, duration, err := resolveDuration(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: duration resolution failed: %v", err)
		return nil, err
	}

	// 3. Текущее время и нормализованный локальный день
	now := uc.timeProvider.Now().In(uc.engine.Location())
	day := req.Date.Day(uc.engine.Location())

	uc.logger.Info("GetAvailableSlots: service=%s, duration=%d, date=%s",
		req.ServiceType, duration, day.Format(domain.DateFormat))

	// 4. Конфигурация слотов (отсутствующая строка - значения по умолчанию)
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	if cfg == nil {
		cfg = domain.DefaultSlotsConfig()
		uc.logger.Info("GetAvailableSlots: using default slots config")
	}

	// 5. Проверка глубины записи вперед
	if err := validateAdvanceLimit(day, now, cfg.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Свежий снимок периодов закрытия и записей на день
	closures, err := uc.closureRepo.GetActive(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Движок отдает отсортированный список свободных времён
	slots, err := uc.engine.AvailableSlots(scheduling.SlotRequest{
		Date:                    req.Date,
		DurationMinutes:         duration,
		IntervalMinutes:         cfg.SlotIntervalMinutes,
		BufferMinutes:           cfg.BufferMinutes,
		MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
		Now:                     now,
	}, appointments, closures)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: engine failed: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for service=%s, date=%s",
		len(slots), req.ServiceType, day.Format(domain.DateFormat))

	return &Response{
		Date:            day,
		ServiceType:     svc.Type,
		ServiceName:     svc.Name,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
