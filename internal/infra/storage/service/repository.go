package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"business_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("business_id", "name", "description", "duration_minutes", "price", "is_active").
		Values(s.BusinessID, s.Name, s.Description, s.DurationMinutes, s.Price, s.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает услугу по ID в рамках бизнеса
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByBusiness получает услуги бизнеса
// При onlyActive = true возвращает только активные
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"business_id": businessID})

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет услугу
func (r *Repository) Update(ctx context.Context, businessID, id int64, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("duration_minutes", s.DurationMinutes).
		Set("price", s.Price).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.ID = id
	s.BusinessID = businessID
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
