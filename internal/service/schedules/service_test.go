package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockSchedules struct{ mock.Mock }

func (m *mockSchedules) GetByStylistAndDate(ctx context.Context, stylistID uuid.UUID, date time.Time) (*domain.StylistSchedule, error) {
	args := m.Called(ctx, stylistID, date)
	if s, ok := args.Get(0).(*domain.StylistSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSchedules) Upsert(ctx context.Context, s *domain.StylistSchedule) (*domain.StylistSchedule, error) {
	args := m.Called(ctx, s)
	if out, ok := args.Get(0).(*domain.StylistSchedule); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) GetStylist(ctx context.Context, salonID, stylistID uuid.UUID) (*domain.Stylist, error) {
	args := m.Called(ctx, salonID, stylistID)
	if s, ok := args.Get(0).(*domain.Stylist); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, salonID, userID)
	return args.Bool(0), args.Error(1)
}

var (
	salonID   = uuid.New()
	stylistID = uuid.New()
	staffID   = uuid.New()
	date      = time.Date(2030, time.January, 14, 0, 0, 0, 0, time.UTC)
)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func validRequest() *models.UpsertRequest {
	return &models.UpsertRequest{
		UserID:      staffID,
		SalonID:     salonID,
		StylistID:   stylistID,
		Date:        date,
		StartTime:   tod("10:00"),
		EndTime:     tod("16:00"),
		IsAvailable: true,
		BreakStart:  ptr.Ptr(tod("13:00")),
		BreakEnd:    ptr.Ptr(tod("13:30")),
	}
}

func TestUpsert_Success(t *testing.T) {
	schedules := &mockSchedules{}
	catalog := &mockCatalog{}
	svc := NewService(schedules, catalog, logger.NewNop())

	catalog.On("IsSalonStaff", mock.Anything, salonID, staffID).Return(true, nil)
	catalog.On("GetStylist", mock.Anything, salonID, stylistID).Return(&domain.Stylist{ID: stylistID}, nil)
	schedules.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.StylistSchedule) bool {
		return s.StylistID == stylistID && s.SalonID == salonID && s.IsAvailable && *s.BreakStart == tod("13:00")
	})).Return(func() *domain.StylistSchedule {
		saved := validRequest().ToDomain()
		saved.ID = uuid.New()
		return saved
	}(), nil)

	resp, err := svc.Upsert(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "2030-01-14", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestUpsert_DayOffSkipsWindowChecks(t *testing.T) {
	schedules := &mockSchedules{}
	catalog := &mockCatalog{}
	svc := NewService(schedules, catalog, logger.NewNop())

	catalog.On("IsSalonStaff", mock.Anything, salonID, staffID).Return(true, nil)
	catalog.On("GetStylist", mock.Anything, salonID, stylistID).Return(&domain.Stylist{}, nil)
	schedules.On("Upsert", mock.Anything, mock.Anything).Return(&domain.StylistSchedule{ID: uuid.New(), Date: date}, nil)

	_, err := svc.Upsert(context.Background(), &models.UpsertRequest{
		UserID:    staffID,
		SalonID:   salonID,
		StylistID: stylistID,
		Date:      date,
		Notes:     ptr.Ptr("vacation"),
	})

	assert.NoError(t, err)
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.UpsertRequest)
	}{
		{"end before start", func(r *models.UpsertRequest) { r.EndTime = tod("09:00") }},
		{"break without end", func(r *models.UpsertRequest) { r.BreakEnd = nil }},
		{"break outside window", func(r *models.UpsertRequest) { r.BreakStart, r.BreakEnd = ptr.Ptr(tod("15:30")), ptr.Ptr(tod("16:30")) }},
		{"empty break", func(r *models.UpsertRequest) { r.BreakEnd = ptr.Ptr(tod("13:00")) }},
		{"missing date", func(r *models.UpsertRequest) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockSchedules{}, &mockCatalog{}, logger.NewNop())
			req := validRequest()
			tt.modify(req)

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_AccessDenied(t *testing.T) {
	catalog := &mockCatalog{}
	catalog.On("IsSalonStaff", mock.Anything, salonID, staffID).Return(false, nil)
	svc := NewService(&mockSchedules{}, catalog, logger.NewNop())

	_, err := svc.Upsert(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGet(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		schedules := &mockSchedules{}
		catalog := &mockCatalog{}
		catalog.On("GetStylist", mock.Anything, salonID, stylistID).Return(&domain.Stylist{}, nil)
		schedules.On("GetByStylistAndDate", mock.Anything, stylistID, date).Return(nil, scheduleRepo.ErrScheduleNotFound)

		_, err := NewService(schedules, catalog, logger.NewNop()).Get(context.Background(), salonID, stylistID, date)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("stylist from another salon", func(t *testing.T) {
		catalog := &mockCatalog{}
		catalog.On("GetStylist", mock.Anything, salonID, stylistID).Return(nil, catalogRepo.ErrStylistNotFound)

		_, err := NewService(&mockSchedules{}, catalog, logger.NewNop()).Get(context.Background(), salonID, stylistID, date)
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		schedules := &mockSchedules{}
		catalog := &mockCatalog{}
		catalog.On("GetStylist", mock.Anything, salonID, stylistID).Return(&domain.Stylist{}, nil)
		schedules.On("GetByStylistAndDate", mock.Anything, stylistID, date).Return(nil, errors.New("timeout"))

		_, err := NewService(schedules, catalog, logger.NewNop()).Get(context.Background(), salonID, stylistID, date)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
