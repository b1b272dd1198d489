package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"business_id",
	"name",
	"phone",
	"email",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone создает клиента или обновляет существующего по телефону.
// Уникальный индекс (business_id, phone): телефон - идентификатор клиента
// внутри бизнеса. Имя и email при повторной брони обновляются.
func (r *Repository) UpsertByPhone(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("business_id", "name", "phone", "email", "is_active").
		Values(c.BusinessID, c.Name, c.Phone, c.Email, true).
		Suffix(`ON CONFLICT (business_id, phone) DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(EXCLUDED.email, customers.email),
			updated_at = NOW()
		RETURNING id, email, is_active, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Email, &c.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает клиента по ID в рамках бизнеса
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByBusiness получает клиентов бизнеса с опциональным поиском по имени/телефону
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64, search *string) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"business_id": businessID})

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.Like{"phone": pattern},
		})
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.BusinessID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
