package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

const metricsView = "stylist"

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	catalogRepo     CatalogRepository
	loader          ConstraintsLoader
	metrics         SlotsRecorder
	timeProvider    TimeProvider
	defaultDuration int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultDuration - длительность в минутах без услуги и явной длительности; metrics может быть nil
func NewUseCase(
	catalogRepo CatalogRepository,
	loader ConstraintsLoader,
	metrics SlotsRecorder,
	defaultDuration int,
	logger Logger,
) *UseCase {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultServiceDurationMinutes
	}
	return &UseCase{
		catalogRepo:     catalogRepo,
		loader:          loader,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Execute возвращает свободные времена начала и ближайший свободный слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%s, stylist=%s, service=%v, date=%s",
		req.SalonID, req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	day, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	slots := day.slots()

	resp := &Response{
		Date:            req.Date,
		SalonID:         req.SalonID,
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		DurationMinutes: day.duration,
		Slots:           slots,
	}
	if len(slots) > 0 {
		next := slots[0]
		resp.NextAvailable = &next
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlots(metricsView, len(slots))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for salon=%s, stylist=%s, date=%s",
		len(slots), req.SalonID, req.StylistID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// CheckSlot проверяет, можно ли записаться на конкретное время
func (uc *UseCase) CheckSlot(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	uc.logger.Info("CheckSlot: salon=%s, stylist=%s, date=%s, time=%s",
		req.SalonID, req.StylistID, req.Date.Format(domain.DateFormat), req.Time)

	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	day, err := uc.prepare(ctx, &req.Request)
	if err != nil {
		return nil, err
	}

	return &CheckResponse{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: day.duration,
		Available:       day.isAvailable(req.Time),
	}, nil
}

// dayContext данные для расчета слотов мастера на дату
type dayContext struct {
	date     time.Time
	snapshot *constraints.Snapshot
	duration int
	// notBefore для сегодняшней даты: слоты раньше текущего времени салона недоступны
	notBefore *types.TimeOfDay
}

func (d *dayContext) slots() []types.TimeOfDay {
	if d.snapshot.StylistOff {
		return []types.TimeOfDay{}
	}

	all := availability.GenerateAvailableTimeSlots(d.date, d.snapshot.Constraints, d.duration)
	if d.notBefore == nil {
		return all
	}

	upcoming := make([]types.TimeOfDay, 0, len(all))
	for _, t := range all {
		if !t.IsBefore(*d.notBefore) {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming
}

func (d *dayContext) isAvailable(t types.TimeOfDay) bool {
	if d.snapshot.StylistOff {
		return false
	}
	if d.notBefore != nil && t.IsBefore(*d.notBefore) {
		return false
	}
	return availability.IsTimeSlotAvailable(d.date, t, d.snapshot.Constraints, d.duration)
}

// prepare валидирует запрос и загружает все данные для расчета
func (uc *UseCase) prepare(ctx context.Context, req *Request) (*dayContext, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер должен работать в салоне
	stylist, err := uc.catalogRepo.GetStylist(ctx, req.SalonID, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%s not found in salon=%s", req.StylistID, req.SalonID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get stylist id=%s: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.IsActive {
		uc.logger.Warn("GetAvailableSlots: stylist id=%s is inactive", req.StylistID)
		return nil, ErrStylistInactive
	}

	// 3. Длительность: из услуги, затем из запроса, затем по умолчанию
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Часы работы, расписание мастера и его записи на дату
	snapshot, err := uc.loader.Load(ctx, constraints.Query{
		SalonID:   req.SalonID,
		StylistID: &req.StylistID,
		Date:      req.Date,
	})
	if err != nil {
		if errors.Is(err, constraints.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load constraints: %v", err)
		return nil, fmt.Errorf("%w: failed to load constraints: %v", ErrInternal, err)
	}

	// 5. Дата сравнивается в часовом поясе салона
	now := uc.timeProvider.Now().In(snapshot.Salon.Location())
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	day := &dayContext{
		date:     req.Date,
		snapshot: snapshot,
		duration: duration,
	}
	if isSameDay(req.Date, now) {
		current := types.FromTime(now)
		day.notBefore = &current
	}

	return day, nil
}

func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.ServiceID == nil {
		if req.DurationMinutes > 0 {
			return req.DurationMinutes, nil
		}
		return uc.defaultDuration, nil
	}

	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, *req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found in salon=%s", *req.ServiceID, req.SalonID)
			return 0, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
		return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes > 0 {
		return service.DurationMinutes, nil
	}
	return uc.defaultDuration, nil
}
