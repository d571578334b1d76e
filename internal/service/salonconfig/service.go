package salonconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
)

// Service сервис для работы с конфигурацией слотов салона
type Service struct {
	configRepo   ConfigRepository
	adminChecker AdminChecker
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	adminChecker AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepo,
		adminChecker: adminChecker,
		logger:       logger,
	}
}

// Get возвращает текущую конфигурацию слотов
// Отсутствующая строка в хранилище - конфигурация по умолчанию
// Доступно только администраторам салона
func (s *Service) Get(ctx context.Context, userID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching slots config for user=%d", userID)

	if !s.adminChecker.IsAdmin(userID) {
		s.logger.Warn("Get: user=%d is not an admin", userID)
		return nil, ErrAccessDenied
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no stored config, returning defaults")
			return models.FromDomainConfig(domain.DefaultSlotsConfig()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update обновляет конфигурацию слотов
// Непереданные поля сохраняют текущие значения
// Доступно только администраторам салона
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating slots config by user=%d", req.UserID)

	if !s.adminChecker.IsAdmin(req.UserID) {
		s.logger.Warn("Update: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	// Базой для частичного обновления служит текущая конфигурация
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			cfg = domain.DefaultSlotsConfig()
		} else {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	if req.SlotIntervalMinutes != nil {
		cfg.SlotIntervalMinutes = *req.SlotIntervalMinutes
	}
	if req.BufferMinutes != nil {
		cfg.BufferMinutes = *req.BufferMinutes
	}
	if req.AdvanceBookingDays != nil {
		cfg.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.MinBookingNoticeMinutes != nil {
		cfg.MinBookingNoticeMinutes = *req.MinBookingNoticeMinutes
	}

	if err := s.validateConfigData(cfg); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated slots config (interval=%d, buffer=%d, advance=%d, notice=%d)",
		updated.SlotIntervalMinutes, updated.BufferMinutes, updated.AdvanceBookingDays, updated.MinBookingNoticeMinutes)
	return models.FromDomainConfig(updated), nil
}

// validateConfigData проверяет допустимость значений конфигурации
func (s *Service) validateConfigData(cfg *domain.SalonSlotsConfig) error {
	if cfg.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		cfg.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if cfg.BufferMinutes < domain.MinBufferMinutes || cfg.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if cfg.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		cfg.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if cfg.MinBookingNoticeMinutes < domain.MinNoticeMinutes ||
		cfg.MinBookingNoticeMinutes > domain.MaxNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeMinutes, domain.MaxNoticeMinutes)
	}

	return nil
}
