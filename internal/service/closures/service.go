package closures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	closureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

// Service сервис для работы с периодами закрытия салона
type Service struct {
	closureRepo  ClosureRepository
	adminChecker AdminChecker
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса периодов закрытия
func NewService(
	closureRepo ClosureRepository,
	adminChecker AdminChecker,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		closureRepo:  closureRepo,
		adminChecker: adminChecker,
		location:     location,
		logger:       logger,
	}
}

// List возвращает актуальные периоды закрытия
// Публичный метод: клиент по нему отличает "закрыто" от "всё занято",
// потому что список доступности в обоих случаях пуст
func (s *Service) List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error) {
	from := s.today()
	if req.From != nil {
		from = time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, s.location)
	}

	s.logger.Info("List: fetching closures from=%s", from.Format(domain.DateFormat))

	closures, err := s.closureRepo.GetActive(ctx, from)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d closures", len(closures))
	return models.FromDomainClosureList(closures), nil
}

// Create создает новый период закрытия
// Доступно только администраторам салона
// Пересечение с существующим периодом отклоняется: пересекающиеся
// периоды не ломают расчёт доступности, но засоряют календарь
func (s *Service) Create(ctx context.Context, req *models.CreateClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("Create: creating closure by user=%d", req.UserID)

	if !s.adminChecker.IsAdmin(req.UserID) {
		s.logger.Warn("Create: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	startDate := req.StartDate.Day(s.location)
	endDate := req.EndDate.Day(s.location)

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	overlapping, err := s.closureRepo.GetOverlapping(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("Create: failed to check overlapping closures: %v", err)
		return nil, fmt.Errorf("%w: failed to check overlapping closures: %v", ErrInternal, err)
	}
	if len(overlapping) > 0 {
		s.logger.Warn("Create: period %s..%s overlaps %d existing closures",
			startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), len(overlapping))
		return nil, ErrClosureOverlaps
	}

	created, err := s.closureRepo.Create(ctx, &domain.ClosurePeriod{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created closure id=%d (%s..%s)",
		created.ID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
	return models.FromDomainClosure(created), nil
}

// Delete удаляет период закрытия
// Доступно только администраторам салона
func (s *Service) Delete(ctx context.Context, req *models.DeleteClosureRequest) error {
	s.logger.Info("Delete: deleting closure id=%d by user=%d", req.ClosureID, req.UserID)

	if !s.adminChecker.IsAdmin(req.UserID) {
		s.logger.Warn("Delete: user=%d is not an admin", req.UserID)
		return ErrAccessDenied
	}

	if err := s.closureRepo.Delete(ctx, req.ClosureID); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("Delete: closure id=%d not found", req.ClosureID)
			return ErrClosureNotFound
		}
		s.logger.Error("Delete: repository error for closure id=%d: %v", req.ClosureID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted closure id=%d", req.ClosureID)
	return nil
}

// today возвращает локальную полночь текущего дня
func (s *Service) today() time.Time {
	now := time.Now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
