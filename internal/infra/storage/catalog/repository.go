package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

var stylistColumns = []string{
	"s.id",
	"s.user_id",
	"s.salon_id",
	"COALESCE(u.full_name, '')",
	"s.specialties",
	"s.bio",
	"s.hourly_rate",
	"s.commission_rate",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
}

var serviceColumns = []string{
	"id",
	"salon_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"category",
	"color",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий мастеров и услуг салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStylist получает мастера по ID в рамках салона
func (r *Repository) GetStylist(ctx context.Context, salonID, stylistID uuid.UUID) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := stylistSelect().
		Where(squirrel.Eq{"s.id": stylistID, "s.salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - build select query: %v", ErrBuildQuery, err)
	}

	stylist, err := scanStylist(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - scan stylist: %v", ErrScanRow, err)
	}

	return stylist, nil
}

// ListStylists получает активных мастеров салона
func (r *Repository) ListStylists(ctx context.Context, salonID uuid.UUID) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := stylistSelect().
		Where(squirrel.Eq{"s.salon_id": salonID, "s.is_active": true}).
		OrderBy("u.full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStylists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		stylist, err := scanStylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, stylist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStylists - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}

// GetService получает услугу по ID в рамках салона
func (r *Repository) GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// ListServices получает активные услуги салона, сгруппированные по категории
func (r *Repository) ListServices(ctx context.Context, salonID uuid.UUID) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"salon_id": salonID, "is_active": true}).
		OrderBy("category ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// IsSalonStaff проверяет, что пользователь - активный мастер салона
func (r *Repository) IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("stylists").
		Where(squirrel.Eq{"salon_id": salonID, "user_id": userID, "is_active": true}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsSalonStaff - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsSalonStaff - scan result: %v", ErrScanRow, err)
	}

	return exists, nil
}

func stylistSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(stylistColumns...).
		From("stylists s").
		LeftJoin("users u ON u.id = s.user_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStylist(row rowScanner) (*domain.Stylist, error) {
	var s domain.Stylist
	var specialties pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.SalonID,
		&s.FullName,
		&specialties,
		&s.Bio,
		&s.HourlyRate,
		&s.CommissionRate,
		&s.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Specialties = []string(specialties)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SalonID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Category,
		&s.Color,
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
