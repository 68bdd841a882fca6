package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	staff           StaffChecker
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	staff StaffChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		staff:           staff,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Видна клиенту, который записался, и сотрудникам салона
func (s *Service) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, userID)

	apt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	isStaff, err := s.isStaff(ctx, apt.SalonID, userID)
	if err != nil {
		return nil, err
	}

	if !isStaff && apt.CustomerID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(apt, isStaff), nil
}

// List получает записи салона за период.
// Доступно только сотрудникам салона
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for salon=%s, user=%s, period=%s to %s, stylist=%v, status=%v, includeInactive=%t",
		req.SalonID, req.UserID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat),
		req.StylistID, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	isStaff, err := s.isStaff(ctx, req.SalonID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !isStaff {
		s.logger.Warn("List: user=%s is not staff of salon=%s", req.UserID, req.SalonID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for salon=%s", len(appointments), req.SalonID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus меняет статус записи.
// Сотрудник салона может выполнить любой допустимый переход,
// клиент может только отменить свою запись
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s, user=%s, status=%s", id, req.UserID, req.Status)

	next, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("UpdateStatus: validation failed: %v", err)
		return nil, err
	}

	var (
		updated *domain.Appointment
		isStaff bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		apt, err := s.getAppointment(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		isStaff, err = s.isStaff(txCtx, apt.SalonID, req.UserID)
		if err != nil {
			return err
		}

		if !isStaff {
			if apt.CustomerID != req.UserID || next != domain.StatusCancelled || req.InternalNotes != nil {
				s.logger.Warn("UpdateStatus: user=%s may not set status=%s on appointment id=%s", req.UserID, next, id)
				return ErrAccessDenied
			}
		}

		if !apt.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s", apt.Status, next, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, next)
		}

		update := domain.StatusUpdate{
			Status:        next,
			InternalNotes: req.InternalNotes,
		}
		if next == domain.StatusCancelled {
			update.CancellationReason = req.CancellationReason
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, update); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: failed to update appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.getAppointment(txCtx, "UpdateStatus", id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, updated.Status)
	return models.FromDomainAppointment(updated, isStaff), nil
}

func (s *Service) getAppointment(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return apt, nil
}

func (s *Service) isStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	ok, err := s.staff.IsSalonStaff(ctx, salonID, userID)
	if err != nil {
		s.logger.Error("isStaff: failed to check user=%s in salon=%s: %v", userID, salonID, err)
		return false, fmt.Errorf("%w: isStaff - failed to check staff: %v", ErrInternal, err)
	}
	return ok, nil
}

// validateUpdate проверяет длину текстовых полей
func validateUpdate(req *models.UpdateStatusRequest) error {
	if req.InternalNotes != nil && len(*req.InternalNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: internalNotes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLen {
		return fmt.Errorf("%w: cancellationReason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLen)
	}
	return nil
}
