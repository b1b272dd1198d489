package business

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var businessColumns = []string{
	"id",
	"name",
	"timezone",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бизнесами и членством пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бизнес и назначает создателя владельцем
func (r *Repository) Create(ctx context.Context, b *domain.Business, ownerUserID int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("businesses").
		Columns("name", "timezone", "is_active").
		Values(b.Name, b.Timezone, b.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	memberQuery, memberArgs, err := psqlbuilder.Insert("business_users").
		Columns("user_id", "business_id", "role").
		Values(ownerUserID, b.ID, domain.RoleOwner).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build membership query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, memberQuery, memberArgs...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert owner membership: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Business
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Name,
		&b.Timezone,
		&b.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// GetMembership получает роль пользователя в бизнесе
func (r *Repository) GetMembership(ctx context.Context, userID, businessID int64) (*domain.BusinessUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "business_id", "role").
		From("business_users").
		Where(squirrel.Eq{"user_id": userID, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMembership - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.BusinessUser
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.UserID, &m.BusinessID, &m.Role)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMembership - scan membership: %v", ErrScanRow, err)
	}

	return &m, nil
}

// AddMember добавляет пользователя в бизнес с указанной ролью
func (r *Repository) AddMember(ctx context.Context, m *domain.BusinessUser) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_users").
		Columns("user_id", "business_id", "role").
		Values(m.UserID, m.BusinessID, m.Role).
		Suffix("ON CONFLICT (user_id, business_id) DO UPDATE SET role = EXCLUDED.role").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddMember - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddMember - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
