package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"business_id",
	"first_name",
	"last_name",
	"phone",
	"email",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("business_id", "first_name", "last_name", "phone", "email", "is_active").
		Values(s.BusinessID, s.FirstName, s.LastName, s.Phone, s.Email, s.IsActive).
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

// GetByID получает сотрудника по ID в рамках бизнеса
// Сотрудник другого бизнеса ведет себя как не найденный
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByBusiness получает сотрудников бизнеса
// При onlyActive = true возвращает только активных
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff").
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

	staffList := make([]*domain.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		staffList = append(staffList, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return staffList, nil
}

// Update обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, businessID, id int64, s *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff").
		Set("first_name", s.FirstName).
		Set("last_name", s.LastName).
		Set("phone", s.Phone).
		Set("email", s.Email).
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
		return nil, ErrStaffNotFound
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

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var s domain.Staff
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.FirstName,
		&s.LastName,
		&s.Phone,
		&s.Email,
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
