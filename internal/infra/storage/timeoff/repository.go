package timeoff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var timeOffColumns = []string{
	"id",
	"business_id",
	"staff_id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с отсутствиями сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отсутствий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись отсутствия
func (r *Repository) Create(ctx context.Context, t *domain.TimeOff) (*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_off").
		Columns("business_id", "staff_id", "start_at", "end_at", "reason").
		Values(t.BusinessID, t.StaffID, t.StartAt, t.EndAt, t.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// ListByStaffAndPeriod получает отсутствия сотрудника, пересекающиеся с [start, end)
func (r *Repository) ListByStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeOffColumns...).
		From("time_off").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimeOffs(rows)
}

// ListByStaff получает все отсутствия сотрудника
func (r *Repository) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeOffColumns...).
		From("time_off").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimeOffs(rows)
}

// Delete удаляет запись отсутствия
func (r *Repository) Delete(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_off").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
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
		return ErrTimeOffNotFound
	}

	return nil
}

func scanTimeOffs(rows *sql.Rows) ([]*domain.TimeOff, error) {
	timeOffs := make([]*domain.TimeOff, 0)

	for rows.Next() {
		var t domain.TimeOff
		var createdAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.BusinessID,
			&t.StaffID,
			&t.StartAt,
			&t.EndAt,
			&t.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimeOffs - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		timeOffs = append(timeOffs, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTimeOffs - rows error: %v", ErrScanRow, err)
	}

	return timeOffs, nil
}
