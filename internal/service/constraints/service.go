// Package constraints собирает входные данные калькулятора доступности:
// часы работы салона, расписание мастера и его активные записи на дату.
package constraints

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/salon"
	scheduleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/schedule"
)

// Query параметры загрузки
type Query struct {
	SalonID   uuid.UUID
	StylistID *uuid.UUID // nil - все мастера салона, расписание не учитывается
	Date      time.Time
}

// Snapshot данные салона на дату
type Snapshot struct {
	Salon        *domain.Salon
	Constraints  availability.Constraints
	Appointments []*domain.Appointment // активные записи на дату (для отображения в календаре)

	// StylistOff мастер в этот день не работает (is_available=false в расписании)
	StylistOff bool
}

// Service загрузчик ограничений
type Service struct {
	salonRepo       SalonRepository
	hours           HoursProvider
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр загрузчика
func NewService(
	salonRepo SalonRepository,
	hours HoursProvider,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		salonRepo:       salonRepo,
		hours:           hours,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Load загружает ограничения на дату.
// Внутри транзакции записи на дату блокируются (FOR UPDATE в репозитории)
func (s *Service) Load(ctx context.Context, q Query) (*Snapshot, error) {
	salon, err := s.salonRepo.GetByID(ctx, q.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Load: failed to get salon id=%s: %v", q.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	hours, err := s.hours.GetHours(ctx, q.SalonID)
	if err != nil {
		s.logger.Error("Load: failed to get business hours for salon=%s: %v", q.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	snapshot := &Snapshot{
		Salon:       salon,
		Constraints: availability.Constraints{BusinessHours: hours},
	}

	if q.StylistID != nil {
		window, off, err := s.loadStylistWindow(ctx, *q.StylistID, q.Date)
		if err != nil {
			return nil, err
		}
		snapshot.Constraints.StylistSchedule = window
		snapshot.StylistOff = off
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		SalonID:   q.SalonID,
		StylistID: q.StylistID,
		StartDate: q.Date,
		EndDate:   q.Date,
	})
	if err != nil {
		s.logger.Error("Load: failed to get appointments for salon=%s date=%s: %v",
			q.SalonID, q.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
	}

	snapshot.Appointments = appointments

	// Без мастера записи разных мастеров не блокируют друг друга
	if q.StylistID != nil {
		snapshot.Constraints.ExistingAppointments = domain.ActiveIntervals(appointments)
	}

	return snapshot, nil
}

func (s *Service) loadStylistWindow(ctx context.Context, stylistID uuid.UUID, date time.Time) (*availability.StylistWindow, bool, error) {
	schedule, err := s.scheduleRepo.GetByStylistAndDate(ctx, stylistID, date)
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("Load: failed to get schedule for stylist=%s: %v", stylistID, err)
		return nil, false, fmt.Errorf("%w: failed to get stylist schedule: %v", ErrInternal, err)
	}

	if !schedule.IsAvailable {
		return nil, true, nil
	}

	window := &availability.StylistWindow{Working: schedule.Window()}
	if brk, ok := schedule.Break(); ok {
		window.Break = &brk
	}

	return window, false, nil
}
