package businesshours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	hoursCache "github.com/m04kA/SMC-SalonBookingService/internal/infra/cache/businesshours"
	salonRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
)

// Service сервис часов работы салонов
type Service struct {
	salonRepo SalonRepository
	staff     StaffChecker
	cache     Cache // nil - кэш выключен
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса часов работы.
// cache может быть nil
func NewService(
	salonRepo SalonRepository,
	staff StaffChecker,
	cache Cache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		salonRepo: salonRepo,
		staff:     staff,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// GetHours возвращает часы работы салона, сначала из кэша.
// Внутри транзакции кэш не используется: часы читаются в ней же.
// Ошибки кэша не прерывают запрос: данные читаются из БД
func (s *Service) GetHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	if s.cache == nil || dbmetrics.IsInTransaction(ctx) {
		return s.readHours(ctx, salonID)
	}

	hours, err := s.cache.Get(ctx, salonID)
	if err == nil {
		return hours, nil
	}
	if !errors.Is(err, hoursCache.ErrCacheMiss) {
		s.logger.Warn("GetHours: cache read failed for salon=%s: %v", salonID, err)
	}

	// Версия снимается до чтения из БД, иначе параллельный Update не отсечет запись
	version, versionErr := s.cache.Version(ctx, salonID)
	if versionErr != nil {
		s.logger.Warn("GetHours: cache version read failed for salon=%s: %v", salonID, versionErr)
	}

	hours, err = s.readHours(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if versionErr != nil {
		return hours, nil
	}

	err = s.cache.Set(ctx, salonID, version, hours)
	switch {
	case errors.Is(err, hoursCache.ErrStaleVersion):
		s.logger.Info("GetHours: hours for salon=%s changed during read, cache not filled", salonID)
	case err != nil:
		s.logger.Warn("GetHours: cache write failed for salon=%s: %v", salonID, err)
	}

	return hours, nil
}

func (s *Service) readHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	hours, err := s.salonRepo.GetBusinessHours(ctx, salonID)
	if err != nil {
		s.logger.Error("GetHours: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// Get возвращает часы работы салона с текстовым описанием недели
func (s *Service) Get(ctx context.Context, salonID uuid.UUID) (*models.BusinessHoursResponse, error) {
	s.logger.Info("Get: fetching business hours for salon=%s", salonID)

	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	hours, err := s.GetHours(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(salon, hours, availability.FormatBusinessHours(hours)), nil
}

// Update заменяет недельное расписание салона.
// Доступно только сотрудникам салона
func (s *Service) Update(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("Update: replacing business hours for salon=%s by user=%s", req.SalonID, req.UserID)

	if err := validateDays(req.Days); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	salon, err := s.getSalon(ctx, req.SalonID)
	if err != nil {
		return nil, err
	}

	isStaff, err := s.staff.IsSalonStaff(ctx, req.SalonID, req.UserID)
	if err != nil {
		s.logger.Error("Update: failed to check staff access: %v", err)
		return nil, fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}
	if !isStaff {
		s.logger.Warn("Update: user=%s is not staff of salon=%s", req.UserID, req.SalonID)
		return nil, ErrAccessDenied
	}

	hours := req.ToDomain()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.salonRepo.ReplaceBusinessHours(ctx, req.SalonID, hours)
	})
	if err != nil {
		s.logger.Error("Update: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, req.SalonID); err != nil {
			s.logger.Warn("Update: cache invalidation failed for salon=%s: %v", req.SalonID, err)
		}
	}

	s.logger.Info("Update: successfully replaced %d days for salon=%s", len(hours), req.SalonID)
	return models.FromDomain(salon, hours, availability.FormatBusinessHours(hours)), nil
}

func (s *Service) getSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("salon id=%s not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("failed to get salon id=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	return salon, nil
}

// validateDays проверяет недельное расписание:
// день недели 0..6 без повторов, у открытого дня заданы оба времени и open < close
func validateDays(days []models.DayHours) error {
	if len(days) > domain.DaysInWeek {
		return fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, domain.DaysInWeek)
	}

	seen := make(map[int]struct{}, len(days))
	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek >= domain.DaysInWeek {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6, got %d", ErrInvalidInput, d.DayOfWeek)
		}
		if _, dup := seen[d.DayOfWeek]; dup {
			return fmt.Errorf("%w: duplicate dayOfWeek %d", ErrInvalidInput, d.DayOfWeek)
		}
		seen[d.DayOfWeek] = struct{}{}

		if d.IsClosed {
			continue
		}
		if d.OpenTime == nil || d.CloseTime == nil {
			return fmt.Errorf("%w: openTime and closeTime are required for open day %d", ErrInvalidInput, d.DayOfWeek)
		}
		if !d.OpenTime.IsBefore(*d.CloseTime) {
			return fmt.Errorf("%w: openTime must be before closeTime for day %d", ErrInvalidInput, d.DayOfWeek)
		}
	}

	return nil
}
