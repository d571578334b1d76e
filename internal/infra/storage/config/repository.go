package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов (общий с dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"slot_interval_minutes",
	"buffer_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации слотов салона
// Таблица salon_config содержит не больше одной строки; отсутствие
// строки означает конфигурацию по умолчанию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущую конфигурацию слотов
// Возвращает ErrConfigNotFound, если строка отсутствует - вызывающая
// сторона подставляет значения по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.SalonSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("salon_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.SalonSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.SlotIntervalMinutes,
		&cfg.BufferMinutes,
		&cfg.AdvanceBookingDays,
		&cfg.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert сохраняет конфигурацию, создавая строку при первом обновлении
func (r *Repository) Upsert(ctx context.Context, cfg *domain.SalonSlotsConfig) (*domain.SalonSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && err != ErrConfigNotFound {
		return nil, err
	}

	if existing == nil {
		query, args, err := psqlbuilder.Insert("salon_config").
			Columns(
				"slot_interval_minutes",
				"buffer_minutes",
				"advance_booking_days",
				"min_booking_notice_minutes",
			).
			Values(
				cfg.SlotIntervalMinutes,
				cfg.BufferMinutes,
				cfg.AdvanceBookingDays,
				cfg.MinBookingNoticeMinutes,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
		}

		cfg.CreatedAt = createdAt.Time
		cfg.UpdatedAt = updatedAt.Time
		return cfg, nil
	}

	query, args, err := psqlbuilder.Update("salon_config").
		Set("slot_interval_minutes", cfg.SlotIntervalMinutes).
		Set("buffer_minutes", cfg.BufferMinutes).
		Set("advance_booking_days", cfg.AdvanceBookingDays).
		Set("min_booking_notice_minutes", cfg.MinBookingNoticeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": existing.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute update: %v", ErrExecQuery, err)
	}

	cfg.ID = existing.ID
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
