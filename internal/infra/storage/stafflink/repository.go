package stafflink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var linkColumns = []string{
	"id",
	"business_id",
	"staff_id",
	"service_id",
	"price_override",
	"duration_override",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со связками сотрудник-услуга
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория связок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или заменяет связку для пары (сотрудник, услуга)
// Уникальный индекс (staff_id, service_id) гарантирует не более одной строки:
// повторная привязка обновляет переопределения и реактивирует связку
func (r *Repository) Upsert(ctx context.Context, link *domain.StaffService) (*domain.StaffService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_services").
		Columns("business_id", "staff_id", "service_id", "price_override", "duration_override", "is_active").
		Values(link.BusinessID, link.StaffID, link.ServiceID, link.PriceOverride, link.DurationOverride, link.IsActive).
		Suffix(`ON CONFLICT (staff_id, service_id) DO UPDATE SET
			price_override = EXCLUDED.price_override,
			duration_override = EXCLUDED.duration_override,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&link.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	link.CreatedAt = createdAt.Time
	link.UpdatedAt = updatedAt.Time

	return link, nil
}

// GetByStaffAndService получает активную связку для пары (сотрудник, услуга)
func (r *Repository) GetByStaffAndService(ctx context.Context, businessID, staffID, serviceID int64) (*domain.StaffService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("staff_services").
		Where(squirrel.Eq{
			"business_id": businessID,
			"staff_id":    staffID,
			"service_id":  serviceID,
			"is_active":   true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndService - build select query: %v", ErrBuildQuery, err)
	}

	link, err := scanLink(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndService - scan link: %v", ErrScanRow, err)
	}

	return link, nil
}

// ListByStaff получает активные связки сотрудника
func (r *Repository) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.StaffService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("staff_services").
		Where(squirrel.Eq{"business_id": businessID, "staff_id": staffID, "is_active": true}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryLinks(ctx, executor, query, args, "ListByStaff")
}

// Deactivate отключает связку (unlink): новые брони по ней невозможны,
// существующие не затрагиваются
func (r *Repository) Deactivate(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_services").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID, "is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

func (r *Repository) queryLinks(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) ([]*domain.StaffService, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	links := make([]*domain.StaffService, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return links, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLink(row rowScanner) (*domain.StaffService, error) {
	var link domain.StaffService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&link.ID,
		&link.BusinessID,
		&link.StaffID,
		&link.ServiceID,
		&link.PriceOverride,
		&link.DurationOverride,
		&link.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	link.CreatedAt = createdAt.Time
	link.UpdatedAt = updatedAt.Time

	return &link, nil
}
