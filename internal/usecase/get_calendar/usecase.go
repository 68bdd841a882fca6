package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
)

// UseCase use case календаря салона: день или неделя
type UseCase struct {
	catalogRepo     CatalogRepository
	loader          ConstraintsLoader
	metrics         SlotsRecorder
	defaultDuration int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultDuration - длительность в минутах, когда услуга не выбрана; metrics может быть nil
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
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Execute строит сетку календаря.
// Неделя - семь дней начиная с req.Date, дни считаются параллельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: salon=%s, stylist=%v, view=%s, date=%s",
		req.SalonID, req.StylistID, req.View, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер (если указан) должен работать в салоне
	if req.StylistID != nil {
		if _, err := uc.catalogRepo.GetStylist(ctx, req.SalonID, *req.StylistID); err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				uc.logger.Warn("GetCalendar: stylist id=%s not found in salon=%s", *req.StylistID, req.SalonID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("GetCalendar: failed to get stylist id=%s: %v", *req.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
	}

	// 3. Длительность: из выбранной услуги, иначе по умолчанию
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Сетки по дням
	dayCount := 1
	if req.View == ViewWeek {
		dayCount = domain.DaysInWeek
	}

	days := make([]Day, dayCount)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < dayCount; i++ {
		date := req.Date.AddDate(0, 0, i)
		g.Go(func() error {
			day, err := uc.buildDay(gctx, req, date, duration)
			if err != nil {
				return err
			}
			days[i] = *day
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, constraints.ErrSalonNotFound) {
			uc.logger.Warn("GetCalendar: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetCalendar: failed to build calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to build calendar: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		total := 0
		for _, d := range days {
			total += d.AvailableCount
		}
		uc.metrics.ObserveSlots(string(req.View), total)
	}

	uc.logger.Info("GetCalendar: built %d day(s) for salon=%s", len(days), req.SalonID)

	return &Response{
		SalonID:         req.SalonID,
		StylistID:       req.StylistID,
		View:            req.View,
		DurationMinutes: duration,
		Days:            days,
	}, nil
}

func (uc *UseCase) buildDay(ctx context.Context, req *Request, date time.Time, duration int) (*Day, error) {
	snapshot, err := uc.loader.Load(ctx, constraints.Query{
		SalonID:   req.SalonID,
		StylistID: req.StylistID,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}

	_, open := availability.WorkingWindow(date, snapshot.Constraints)
	grid := availability.BuildDayGrid(date, snapshot.Constraints, duration, snapshot.Appointments)

	if snapshot.StylistOff {
		for i := range grid {
			grid[i].Available = false
		}
	}

	return &Day{
		Date:           date,
		IsOpen:         open && !snapshot.StylistOff,
		Slots:          grid,
		AvailableCount: availability.CountAvailable(grid),
	}, nil
}

func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.ServiceID == nil {
		return uc.defaultDuration, nil
	}

	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, *req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetCalendar: service id=%s not found in salon=%s", *req.ServiceID, req.SalonID)
			return 0, ErrServiceNotFound
		}
		uc.logger.Error("GetCalendar: failed to get service id=%s: %v", *req.ServiceID, err)
		return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes > 0 {
		return service.DurationMinutes, nil
	}
	return uc.defaultDuration, nil
}
