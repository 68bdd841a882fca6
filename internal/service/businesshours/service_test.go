package businesshours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	hoursCache "github.com/m04kA/SMC-SalonBookingService/internal/infra/cache/businesshours"
	salonRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockSalonRepo struct{ mock.Mock }

func (m *mockSalonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Salon); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalonRepo) GetBusinessHours(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	args := m.Called(ctx, salonID)
	if h, ok := args.Get(0).([]domain.BusinessHours); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalonRepo) ReplaceBusinessHours(ctx context.Context, salonID uuid.UUID, hours []domain.BusinessHours) error {
	return m.Called(ctx, salonID, hours).Error(0)
}

type mockStaff struct{ mock.Mock }

func (m *mockStaff) IsSalonStaff(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, salonID, userID)
	return args.Bool(0), args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	args := m.Called(ctx, salonID)
	if h, ok := args.Get(0).([]domain.BusinessHours); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCache) Version(ctx context.Context, salonID uuid.UUID) (int64, error) {
	args := m.Called(ctx, salonID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, salonID uuid.UUID, version int64, hours []domain.BusinessHours) error {
	return m.Called(ctx, salonID, version, hours).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, salonID uuid.UUID) error {
	return m.Called(ctx, salonID).Error(0)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mondayHours() []domain.BusinessHours {
	return []domain.BusinessHours{
		{DayOfWeek: 0, IsClosed: true},
		{DayOfWeek: 1, OpenTime: ptr.Ptr(types.MustParseTimeOfDay("09:00")), CloseTime: ptr.Ptr(types.MustParseTimeOfDay("18:00"))},
	}
}

func TestGetHours_CacheHit(t *testing.T) {
	repo := &mockSalonRepo{}
	cache := &mockCache{}
	salonID := uuid.New()
	cache.On("Get", mock.Anything, salonID).Return(mondayHours(), nil)

	svc := NewService(repo, &mockStaff{}, cache, passthroughTx{}, logger.NewNop())
	hours, err := svc.GetHours(context.Background(), salonID)

	require.NoError(t, err)
	assert.Len(t, hours, 2)
	repo.AssertNotCalled(t, "GetBusinessHours", mock.Anything, mock.Anything)
}

func TestGetHours_CacheMissFillsCache(t *testing.T) {
	repo := &mockSalonRepo{}
	cache := &mockCache{}
	salonID := uuid.New()
	cache.On("Get", mock.Anything, salonID).Return(nil, hoursCache.ErrCacheMiss)
	cache.On("Version", mock.Anything, salonID).Return(int64(3), nil)
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(mondayHours(), nil)
	cache.On("Set", mock.Anything, salonID, int64(3), mock.Anything).Return(nil)

	svc := NewService(repo, &mockStaff{}, cache, passthroughTx{}, logger.NewNop())
	hours, err := svc.GetHours(context.Background(), salonID)

	require.NoError(t, err)
	assert.Len(t, hours, 2)
	cache.AssertExpectations(t)
}

func TestGetHours_CacheErrorFallsBackToRepository(t *testing.T) {
	repo := &mockSalonRepo{}
	cache := &mockCache{}
	salonID := uuid.New()
	cache.On("Get", mock.Anything, salonID).Return(nil, hoursCache.ErrRedis)
	cache.On("Version", mock.Anything, salonID).Return(int64(0), nil)
	cache.On("Set", mock.Anything, salonID, int64(0), mock.Anything).Return(hoursCache.ErrRedis)
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(mondayHours(), nil)

	svc := NewService(repo, &mockStaff{}, cache, passthroughTx{}, logger.NewNop())
	hours, err := svc.GetHours(context.Background(), salonID)

	require.NoError(t, err)
	assert.Len(t, hours, 2)
}

func TestGetHours_CacheVersionErrorSkipsFill(t *testing.T) {
	repo := &mockSalonRepo{}
	cache := &mockCache{}
	salonID := uuid.New()
	cache.On("Get", mock.Anything, salonID).Return(nil, hoursCache.ErrCacheMiss)
	cache.On("Version", mock.Anything, salonID).Return(int64(0), hoursCache.ErrRedis)
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(mondayHours(), nil)

	svc := NewService(repo, &mockStaff{}, cache, passthroughTx{}, logger.NewNop())
	hours, err := svc.GetHours(context.Background(), salonID)

	require.NoError(t, err)
	assert.Len(t, hours, 2)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHours_InTransactionBypassesCache(t *testing.T) {
	repo := &mockSalonRepo{}
	cache := &mockCache{}
	salonID := uuid.New()
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(mondayHours(), nil)

	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{})

	svc := NewService(repo, &mockStaff{}, cache, passthroughTx{}, logger.NewNop())
	hours, err := svc.GetHours(ctx, salonID)

	require.NoError(t, err)
	assert.Len(t, hours, 2)
	repo.AssertExpectations(t)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// racingSalonRepo отдает часы, прочитанные до коммита, и во время чтения
// выполняет onRead (параллельный Update)
type racingSalonRepo struct {
	hours  []domain.BusinessHours
	onRead func()
}

func (r *racingSalonRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Salon, error) {
	return &domain.Salon{ID: id}, nil
}

func (r *racingSalonRepo) GetBusinessHours(_ context.Context, _ uuid.UUID) ([]domain.BusinessHours, error) {
	snapshot := r.hours
	if r.onRead != nil {
		onRead := r.onRead
		r.onRead = nil
		onRead()
	}
	return snapshot, nil
}

func (r *racingSalonRepo) ReplaceBusinessHours(_ context.Context, _ uuid.UUID, hours []domain.BusinessHours) error {
	r.hours = hours
	return nil
}

func TestGetHours_UpdateDuringReadDoesNotPoisonCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	salonID, userID := uuid.New(), uuid.New()
	repo := &racingSalonRepo{hours: mondayHours()}
	staff := &mockStaff{}
	staff.On("IsSalonStaff", mock.Anything, salonID, userID).Return(true, nil)

	svc := NewService(repo, staff, hoursCache.NewCache(client, 5*time.Minute), passthroughTx{}, logger.NewNop())

	repo.onRead = func() {
		_, err := svc.Update(ctx, &models.UpdateBusinessHoursRequest{
			UserID:  userID,
			SalonID: salonID,
			Days:    []models.DayHours{{DayOfWeek: 1, IsClosed: true}},
		})
		require.NoError(t, err)
	}

	// Читатель получает старые часы, но в кэш они не попадают
	stale, err := svc.GetHours(ctx, salonID)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.False(t, stale[1].IsClosed)

	fresh, err := svc.GetHours(ctx, salonID)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.True(t, fresh[0].IsClosed)

	cached, err := hoursCache.NewCache(client, 5*time.Minute).Get(ctx, salonID)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.True(t, cached[0].IsClosed)
}

func TestGetHours_WithoutCache(t *testing.T) {
	repo := &mockSalonRepo{}
	salonID := uuid.New()
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(nil, errors.New("db down"))

	svc := NewService(repo, &mockStaff{}, nil, passthroughTx{}, logger.NewNop())
	_, err := svc.GetHours(context.Background(), salonID)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_Summary(t *testing.T) {
	repo := &mockSalonRepo{}
	salonID := uuid.New()
	repo.On("GetByID", mock.Anything, salonID).Return(&domain.Salon{ID: salonID, Timezone: "Europe/Moscow"}, nil)
	repo.On("GetBusinessHours", mock.Anything, salonID).Return(mondayHours(), nil)

	svc := NewService(repo, &mockStaff{}, nil, passthroughTx{}, logger.NewNop())
	resp, err := svc.Get(context.Background(), salonID)

	require.NoError(t, err)
	assert.Equal(t, "Sunday: Closed\nMonday: 09:00 - 18:00", resp.Summary)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	assert.Len(t, resp.Days, 2)
}

func TestGet_SalonNotFound(t *testing.T) {
	repo := &mockSalonRepo{}
	salonID := uuid.New()
	repo.On("GetByID", mock.Anything, salonID).Return(nil, salonRepo.ErrSalonNotFound)

	svc := NewService(repo, &mockStaff{}, nil, passthroughTx{}, logger.NewNop())
	_, err := svc.Get(context.Background(), salonID)

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUpdate_ReplacesAndInvalidates(t *testing.T) {
	repo := &mockSalonRepo{}
	staff := &mockStaff{}
	cache := &mockCache{}
	salonID, userID := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, salonID).Return(&domain.Salon{ID: salonID}, nil)
	staff.On("IsSalonStaff", mock.Anything, salonID, userID).Return(true, nil)
	repo.On("ReplaceBusinessHours", mock.Anything, salonID, mock.MatchedBy(func(h []domain.BusinessHours) bool {
		return len(h) == 2 && h[1].SalonID == salonID
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, salonID).Return(nil)

	svc := NewService(repo, staff, cache, passthroughTx{}, logger.NewNop())
	resp, err := svc.Update(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:  userID,
		SalonID: salonID,
		Days: []models.DayHours{
			{DayOfWeek: 1, OpenTime: ptr.Ptr(types.MustParseTimeOfDay("10:00")), CloseTime: ptr.Ptr(types.MustParseTimeOfDay("19:00"))},
			{DayOfWeek: 0, IsClosed: true},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Sunday: Closed\nMonday: 10:00 - 19:00", resp.Summary)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdate_AccessDenied(t *testing.T) {
	repo := &mockSalonRepo{}
	staff := &mockStaff{}
	salonID, userID := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, salonID).Return(&domain.Salon{ID: salonID}, nil)
	staff.On("IsSalonStaff", mock.Anything, salonID, userID).Return(false, nil)

	svc := NewService(repo, staff, nil, passthroughTx{}, logger.NewNop())
	_, err := svc.Update(context.Background(), &models.UpdateBusinessHoursRequest{UserID: userID, SalonID: salonID})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "ReplaceBusinessHours", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateDays(t *testing.T) {
	open := ptr.Ptr(types.MustParseTimeOfDay("09:00"))
	closeAt := ptr.Ptr(types.MustParseTimeOfDay("18:00"))

	tests := []struct {
		name    string
		days    []models.DayHours
		wantErr bool
	}{
		{name: "valid", days: []models.DayHours{{DayOfWeek: 1, OpenTime: open, CloseTime: closeAt}, {DayOfWeek: 0, IsClosed: true}}},
		{name: "empty week", days: nil},
		{name: "day out of range", days: []models.DayHours{{DayOfWeek: 7, IsClosed: true}}, wantErr: true},
		{name: "duplicate day", days: []models.DayHours{{DayOfWeek: 1, IsClosed: true}, {DayOfWeek: 1, IsClosed: true}}, wantErr: true},
		{name: "missing close", days: []models.DayHours{{DayOfWeek: 1, OpenTime: open}}, wantErr: true},
		{name: "open after close", days: []models.DayHours{{DayOfWeek: 1, OpenTime: closeAt, CloseTime: open}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDays(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
