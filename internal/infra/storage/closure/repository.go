package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов (общий с dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var closureColumns = []string{
	"id",
	"start_date",
	"end_date",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий периодов закрытия салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов закрытия
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый период закрытия
func (r *Repository) Create(ctx context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closure_periods").
		Columns("start_date", "end_date", "reason").
		Values(closure.StartDate, closure.EndDate, closure.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&closure.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// GetActive получает периоды закрытия, не закончившиеся до указанной даты
// Прошедшие периоды не влияют на доступность и не выбираются
func (r *Repository) GetActive(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closure_periods").
		Where(squirrel.GtOrEq{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// GetOverlapping получает периоды, пересекающиеся с [startDate, endDate]
// Используется сервисным слоем для запрета пересекающихся периодов закрытия
func (r *Repository) GetOverlapping(ctx context.Context, startDate, endDate time.Time) ([]*domain.ClosurePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closure_periods").
		Where(squirrel.LtOrEq{"start_date": endDate}).
		Where(squirrel.GtOrEq{"end_date": startDate}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// Delete удаляет период закрытия
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closure_periods").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// scanClosures сканирует результаты запроса в слайс периодов закрытия
func scanClosures(rows *sql.Rows) ([]*domain.ClosurePeriod, error) {
	closures := make([]*domain.ClosurePeriod, 0)

	for rows.Next() {
		var closure domain.ClosurePeriod
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&closure.ID,
			&closure.StartDate,
			&closure.EndDate,
			&closure.Reason,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %v", ErrScanRow, err)
		}

		closure.CreatedAt = createdAt.Time
		closure.UpdatedAt = updatedAt.Time

		closures = append(closures, &closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
