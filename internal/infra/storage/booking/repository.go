package booking

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

var bookingColumns = []string{
	"id",
	"business_id",
	"staff_id",
	"staff_service_id",
	"customer_id",
	"start_at",
	"end_at",
	"price",
	"duration_minutes",
	"status",
	"expires_at",
	"customer_name",
	"comment",
	"cancel_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Проверка пересечений и вставка должны выполняться в одной транзакции -
// это обеспечивает usecase создания бронирования.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"business_id",
			"staff_id",
			"staff_service_id",
			"customer_id",
			"start_at",
			"end_at",
			"price",
			"duration_minutes",
			"status",
			"expires_at",
			"customer_name",
			"comment",
		).
		Values(
			b.BusinessID,
			b.StaffID,
			b.StaffServiceID,
			b.CustomerID,
			b.StartAt,
			b.EndAt,
			b.Price,
			b.DurationMinutes,
			b.Status,
			b.ExpiresAt,
			b.CustomerName,
			b.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID в рамках бизнеса
// Бронирование другого бизнеса ведет себя как не найденное
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetBlockingForStaffAndPeriod возвращает блокирующие брони сотрудника,
// пересекающиеся с периодом [start, end):
// - status = confirmed, или
// - status = hold с не истекшим expires_at
//
// Внутри транзакции добавляет FOR UPDATE - это точка сериализации
// конкурентных создании брони для одного сотрудника.
func (r *Repository) GetBlockingForStaffAndPeriod(
	ctx context.Context,
	businessID, staffID int64,
	start, end time.Time,
	now time.Time,
) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusHold},
				squirrel.Gt{"expires_at": now},
			},
		}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingForStaffAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingForStaffAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListWithFilter получает бронирования бизнеса с гибкой фильтрацией
// по сотруднику, клиенту, периоду и статусу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Confirm переводит hold в confirmed и очищает expires_at
// Update с guard-условием: затронет строку только если она все еще
// неистекший hold. rowsAffected = 0 -> переход невозможен
func (r *Repository) Confirm(ctx context.Context, businessID, id int64, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("expires_at", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "business_id": businessID, "status": domain.StatusHold}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Cancel переводит hold/confirmed в cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, businessID, id int64, reason *string, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("expires_at", nil).
		Set("cancel_reason", reason).
		Set("cancelled_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{
			"id":          id,
			"business_id": businessID,
			"status":      []domain.BookingStatus{domain.StatusHold, domain.StatusConfirmed},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// MarkExpired помечает конкретный истекший hold как expired
// Используется при ленивой проверке в confirm
func (r *Repository) MarkExpired(ctx context.Context, businessID, id int64, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusExpired).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "business_id": businessID, "status": domain.StatusHold}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkExpired - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkExpired - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ExpireLapsed переводит все истекшие hold в expired (для reaper)
// Идемпотентна: повторный запуск не затрагивает уже переведенные строки
func (r *Repository) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusExpired).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": domain.StatusHold}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BusinessID,
		&b.StaffID,
		&b.StaffServiceID,
		&b.CustomerID,
		&b.StartAt,
		&b.EndAt,
		&b.Price,
		&b.DurationMinutes,
		&b.Status,
		&b.ExpiresAt,
		&b.CustomerName,
		&b.Comment,
		&b.CancelReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
