package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий салонов и их часов работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
		"currency",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var salon domain.Salon
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&salon.Name,
		&salon.Timezone,
		&salon.Currency,
		&salon.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}

// GetBusinessHours получает часы работы салона, отсортированные по дню недели.
// Пустой результат не ошибка: салон без расписания закрыт всю неделю
func (r *Repository) GetBusinessHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.BusinessHours, 0, domain.DaysInWeek)
	for rows.Next() {
		var h domain.BusinessHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.SalonID,
			&h.DayOfWeek,
			&h.OpenTime,
			&h.CloseTime,
			&h.IsClosed,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHours - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceBusinessHours заменяет недельное расписание салона.
// Удаление и вставка должны выполняться в одной транзакции (через txmanager)
func (r *Repository) ReplaceBusinessHours(ctx context.Context, salonID uuid.UUID, hours []domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("salon_id", "day_of_week", "open_time", "close_time", "is_closed")

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(salonID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
