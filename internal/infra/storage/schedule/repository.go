package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий расписаний мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylistAndDate получает расписание мастера на дату.
// ErrScheduleNotFound означает, что расписания нет и действуют только часы работы салона
func (r *Repository) GetByStylistAndDate(ctx context.Context, stylistID uuid.UUID, date time.Time) (*domain.StylistSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"salon_id",
		"date",
		"start_time",
		"end_time",
		"is_available",
		"break_start",
		"break_end",
		"notes",
		"created_at",
		"updated_at",
	).
		From("stylist_schedules").
		Where(squirrel.Eq{"stylist_id": stylistID, "date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.StylistSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StylistID,
		&s.SalonID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.IsAvailable,
		&s.BreakStart,
		&s.BreakEnd,
		&s.Notes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndDate - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет расписание мастера на дату
func (r *Repository) Upsert(ctx context.Context, s *domain.StylistSchedule) (*domain.StylistSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stylist_schedules").
		Columns(
			"stylist_id",
			"salon_id",
			"date",
			"start_time",
			"end_time",
			"is_available",
			"break_start",
			"break_end",
			"notes",
		).
		Values(
			s.StylistID,
			s.SalonID,
			s.Date.Format(domain.DateFormat),
			s.StartTime,
			s.EndTime,
			s.IsAvailable,
			s.BreakStart,
			s.BreakEnd,
			s.Notes,
		).
		Suffix(`ON CONFLICT (stylist_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			notes = EXCLUDED.notes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
