package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	staff           StaffChecker
	loader          ConstraintsLoader
	txManager       TransactionManager
	timeProvider    TimeProvider
	defaultDuration int // для услуг без длительности
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	staff StaffChecker,
	loader ConstraintsLoader,
	txManager TransactionManager,
	defaultDuration int,
	logger Logger,
) *UseCase {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultServiceDurationMinutes
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		staff:           staff,
		loader:          loader,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, customer=%s, salon=%s, stylist=%s, service=%s, date=%s, time=%s",
		req.UserID, req.CustomerID, req.SalonID, req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Записать другого клиента может только сотрудник салона
	if req.CustomerID != req.UserID {
		isStaff, err := uc.staff.IsSalonStaff(ctx, req.SalonID, req.UserID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check staff access: %v", err)
			return nil, fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
		}
		if !isStaff {
			uc.logger.Warn("CreateAppointment: user=%s is not staff of salon=%s, cannot book for customer=%s",
				req.UserID, req.SalonID, req.CustomerID)
			return nil, ErrAccessDenied
		}
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found in salon=%s", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = uc.defaultDuration
	}

	// 4. Получаем мастера
	stylist, err := uc.catalogRepo.GetStylist(ctx, req.SalonID, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateAppointment: stylist id=%s not found in salon=%s", req.StylistID, req.SalonID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get stylist id=%s: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.IsActive {
		uc.logger.Warn("CreateAppointment: stylist id=%s is inactive", req.StylistID)
		return nil, ErrStylistInactive
	}

	var result *domain.Appointment

	// 5. Проверка слота и создание записи в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ограничения на дату; записи мастера блокируются FOR UPDATE
		snapshot, err := uc.loader.Load(txCtx, constraints.Query{
			SalonID:   req.SalonID,
			StylistID: &req.StylistID,
			Date:      req.Date,
		})
		if err != nil {
			if errors.Is(err, constraints.ErrSalonNotFound) {
				uc.logger.Warn("CreateAppointment: salon id=%s not found", req.SalonID)
				return ErrSalonNotFound
			}
			if txmanager.IsSerializationFailure(err) {
				uc.logger.Warn("CreateAppointment: concurrent booking for stylist=%s while loading constraints", req.StylistID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to load constraints: %v", err)
			return fmt.Errorf("%w: failed to load constraints: %v", ErrInternal, err)
		}

		// 5.2. Время записи сравнивается с текущим временем салона
		now := uc.timeProvider.Now().In(snapshot.Salon.Location())
		if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
			uc.logger.Warn("CreateAppointment: %s %s is in the past for salon=%s",
				req.Date.Format(domain.DateFormat), req.StartTime, req.SalonID)
			return err
		}

		// 5.3. Проверяем слот
		if snapshot.StylistOff {
			uc.logger.Warn("CreateAppointment: stylist id=%s is off on %s", req.StylistID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}
		if !availability.IsTimeSlotAvailable(req.Date, req.StartTime, snapshot.Constraints, duration) {
			uc.logger.Warn("CreateAppointment: slot %s (%d min) is not available for stylist=%s",
				req.StartTime, duration, req.StylistID)
			return ErrSlotNotAvailable
		}

		// 5.4. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			SalonID:         req.SalonID,
			CustomerID:      req.CustomerID,
			StylistID:       req.StylistID,
			ServiceID:       req.ServiceID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.StartTime.AddMinutes(duration),
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			TotalAmount:     service.Price,
			PaymentStatus:   domain.PaymentPending,
		})
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				uc.logger.Warn("CreateAppointment: concurrent booking for stylist=%s at %s", req.StylistID, req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт при коммите: слот занят параллельной записью
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateAppointment: serialization failure on commit for stylist=%s at %s: %v",
				req.StylistID, req.StartTime, err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		SalonID:         result.SalonID,
		CustomerID:      result.CustomerID,
		StylistID:       result.StylistID,
		ServiceID:       result.ServiceID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: duration,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		ServiceName:     service.Name,
		TotalAmount:     result.TotalAmount,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
