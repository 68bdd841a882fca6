package upsert_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockService struct{ mock.Mock }

func (m *mockService) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.ScheduleResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*models.ScheduleResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

const route = "/salons/{salonId}/stylists/{stylistId}/schedules/{date}"

func put(svc ScheduleService, salonID, stylistID, date string, userID *uuid.UUID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc(route, NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/salons/"+salonID+"/stylists/"+stylistID+"/schedules/"+date, strings.NewReader(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	salonID, stylistID, userID := uuid.New(), uuid.New(), uuid.New()
	date := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

	svc := &mockService{}
	svc.On("Upsert", mock.Anything, mock.MatchedBy(func(req *models.UpsertRequest) bool {
		return req.UserID == userID && req.SalonID == salonID && req.StylistID == stylistID &&
			req.Date.Equal(date) && req.IsAvailable &&
			req.StartTime == types.MustParseTimeOfDay("10:00") &&
			req.BreakStart != nil && *req.BreakStart == types.MustParseTimeOfDay("13:00")
	})).Return(&models.ScheduleResponse{StylistID: stylistID, Date: "2030-03-04"}, nil)

	rec := put(svc, salonID.String(), stylistID.String(), "2030-03-04", &userID,
		`{"startTime":"10:00","endTime":"18:00","isAvailable":true,"breakStart":"13:00","breakEnd":"14:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2030-03-04"`)
	svc.AssertExpectations(t)
}

func TestHandle_RejectsBodyIdentity(t *testing.T) {
	userID := uuid.New()
	svc := &mockService{}

	rec := put(svc, uuid.NewString(), uuid.NewString(), "2030-03-04", &userID,
		`{"userId":"`+uuid.NewString()+`","startTime":"10:00","endTime":"18:00","isAvailable":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	userID := uuid.New()
	body := `{"startTime":"10:00","endTime":"18:00","isAvailable":true}`

	t.Run("bad date", func(t *testing.T) {
		rec := put(&mockService{}, uuid.NewString(), uuid.NewString(), "2030-13-40", &userID, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		rec := put(&mockService{}, uuid.NewString(), uuid.NewString(), "2030-03-04", nil, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", schedules.ErrInvalidInput, http.StatusBadRequest},
		{"stylist not found", schedules.ErrStylistNotFound, http.StatusNotFound},
		{"access denied", schedules.ErrAccessDenied, http.StatusForbidden},
		{"internal", schedules.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Upsert", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := put(svc, uuid.NewString(), uuid.NewString(), "2030-03-04", &userID, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
