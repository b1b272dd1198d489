package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

var workingHoursColumns = []string{
	"id",
	"business_id",
	"staff_id",
	"weekday",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с рабочими часами сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или заменяет запись рабочих часов для (сотрудник, день недели)
// Уникальный индекс (staff_id, weekday) гарантирует не более одной записи:
// повторный upsert заменяет, а не накапливает
func (r *Repository) Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var breakStart, breakEnd interface{}
	if wh.BreakStart != nil {
		breakStart = wh.BreakStart.String()
	}
	if wh.BreakEnd != nil {
		breakEnd = wh.BreakEnd.String()
	}

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("business_id", "staff_id", "weekday", "start_time", "end_time", "break_start", "break_end", "is_active").
		Values(wh.BusinessID, wh.StaffID, wh.Weekday, wh.StartTime.String(), wh.EndTime.String(), breakStart, breakEnd, wh.IsActive).
		Suffix(`ON CONFLICT (staff_id, weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return wh, nil
}

// GetByStaffAndWeekday получает запись рабочих часов сотрудника на день недели
func (r *Repository) GetByStaffAndWeekday(ctx context.Context, businessID, staffID int64, weekday int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID, "weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	wh, err := scanWorkingHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - scan working hours: %v", ErrScanRow, err)
	}

	return wh, nil
}

// ListByStaff получает все записи рабочих часов сотрудника,
// отсортированные по дню недели
func (r *Repository) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStaff - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Delete удаляет запись рабочих часов на день недели
// День без записи считается нерабочим
func (r *Repository) Delete(ctx context.Context, businessID, staffID int64, weekday int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID, "weekday": weekday}).
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
		return ErrWorkingHoursNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var wh domain.WorkingHours
	var breakStart, breakEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&wh.ID,
		&wh.BusinessID,
		&wh.StaffID,
		&wh.Weekday,
		&wh.StartTime,
		&wh.EndTime,
		&breakStart,
		&breakEnd,
		&wh.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if breakStart.Valid {
		bs := types.TimeString(breakStart.String)
		wh.BreakStart = &bs
	}
	if breakEnd.Valid {
		be := types.TimeString(breakEnd.String)
		wh.BreakEnd = &be
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}
