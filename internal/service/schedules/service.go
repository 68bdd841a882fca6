// Package schedules управляет расписанием мастеров на конкретные даты.
package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Service сервис расписаний мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// Get возвращает расписание мастера на дату
func (s *Service) Get(ctx context.Context, salonID, stylistID uuid.UUID, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: schedule for stylist=%s, salon=%s, date=%s", stylistID, salonID, date.Format(domain.DateFormat))

	if err := s.checkStylist(ctx, salonID, stylistID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByStylistAndDate(ctx, stylistID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Get: repository error for stylist=%s: %v", stylistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(schedule), nil
}

// Upsert устанавливает расписание мастера на дату.
// Доступно только сотрудникам салона
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: schedule for stylist=%s, salon=%s, date=%s by user=%s",
		req.StylistID, req.SalonID, req.Date.Format(domain.DateFormat), req.UserID)

	if err := validateUpsert(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	isStaff, err := s.catalogRepo.IsSalonStaff(ctx, req.SalonID, req.UserID)
	if err != nil {
		s.logger.Error("Upsert: failed to check staff access: %v", err)
		return nil, fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}
	if !isStaff {
		s.logger.Warn("Upsert: user=%s is not staff of salon=%s", req.UserID, req.SalonID)
		return nil, ErrAccessDenied
	}

	if err := s.checkStylist(ctx, req.SalonID, req.StylistID); err != nil {
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Upsert: repository error for stylist=%s: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: saved schedule id=%s", saved.ID)
	return models.FromDomain(saved), nil
}

func (s *Service) checkStylist(ctx context.Context, salonID, stylistID uuid.UUID) error {
	if _, err := s.catalogRepo.GetStylist(ctx, salonID, stylistID); err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			s.logger.Warn("stylist id=%s not found in salon=%s", stylistID, salonID)
			return ErrStylistNotFound
		}
		s.logger.Error("failed to get stylist id=%s: %v", stylistID, err)
		return fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	return nil
}

// validateUpsert проверяет окно и перерыв.
// Перерыв задается целиком и лежит внутри рабочего окна
func validateUpsert(req *models.UpsertRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if !req.IsAvailable {
		return nil
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if (req.BreakStart == nil) != (req.BreakEnd == nil) {
		return fmt.Errorf("%w: breakStart and breakEnd must be set together", ErrInvalidInput)
	}
	if req.BreakStart != nil {
		brk := types.NewTimeRange(*req.BreakStart, *req.BreakEnd)
		window := types.NewTimeRange(req.StartTime, req.EndTime)
		if brk.IsEmpty() || !window.Contains(brk) {
			return fmt.Errorf("%w: break must be a non-empty range inside working hours", ErrInvalidInput)
		}
	}

	return nil
}
