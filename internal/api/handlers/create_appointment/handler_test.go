package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*createAppointment.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func requestBody(t *testing.T, req CreateAppointmentRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return string(data)
}

func serve(uc CreateAppointmentUseCase, body string, userID *uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func validRequest() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		SalonID:         uuid.New(),
		StylistID:       uuid.New(),
		ServiceID:       uuid.New(),
		AppointmentDate: "2030-03-04",
		StartTime:       "10:30",
	}
}

func TestHandle_Created(t *testing.T) {
	userID := uuid.New()
	in := validRequest()
	now := time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createAppointment.Request) bool {
		return req.CustomerID == userID && req.UserID == userID && req.StylistID == in.StylistID &&
			req.StartTime == types.MustParseTimeOfDay("10:30") &&
			req.Date.Equal(time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC))
	})).Return(&createAppointment.Response{
		ID:              uuid.New(),
		SalonID:         in.SalonID,
		CustomerID:      userID,
		StylistID:       in.StylistID,
		ServiceID:       in.ServiceID,
		AppointmentDate: time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustParseTimeOfDay("10:30"),
		EndTime:         types.MustParseTimeOfDay("11:30"),
		DurationMinutes: 60,
		Status:          "pending",
		PaymentStatus:   "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil)

	rec := serve(uc, requestBody(t, in), &userID)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2030-03-04", body.AppointmentDate)
	assert.Equal(t, "10:30", body.StartTime)
	assert.Equal(t, "11:30", body.EndTime)
	assert.Equal(t, "pending", body.Status)
}

func TestHandle_MissingUser(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(uc, requestBody(t, validRequest()), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_BadBody(t *testing.T) {
	userID := uuid.New()

	badDate := validRequest()
	badDate.AppointmentDate = "04/03/2030"
	badTime := validRequest()
	badTime.StartTime = "25:00"

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"not json", "{", msgInvalidRequestBody},
		{"unknown field", `{"salonId":"` + uuid.NewString() + `","price":1}`, msgInvalidRequestBody},
		{"bad date", requestBody(t, badDate), msgInvalidDate},
		{"bad time", requestBody(t, badTime), msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(uc, tt.body, &userID)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"not staff", createAppointment.ErrAccessDenied, http.StatusForbidden},
		{"salon not found", createAppointment.ErrSalonNotFound, http.StatusNotFound},
		{"stylist not found", createAppointment.ErrStylistNotFound, http.StatusNotFound},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"stylist inactive", createAppointment.ErrStylistInactive, http.StatusBadRequest},
		{"service inactive", createAppointment.ErrServiceInactive, http.StatusBadRequest},
		{"past", createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{"invalid", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, requestBody(t, validRequest()), &userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BookingForCustomer(t *testing.T) {
	staffID, customerID := uuid.New(), uuid.New()
	in := validRequest()
	in.CustomerID = &customerID

	t.Run("staff", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createAppointment.Request) bool {
			return req.UserID == staffID && req.CustomerID == customerID
		})).Return(&createAppointment.Response{ID: uuid.New(), CustomerID: customerID}, nil)

		rec := serve(uc, requestBody(t, in), &staffID)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, customerID, body.CustomerID)
		uc.AssertExpectations(t)
	})

	t.Run("not staff", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createAppointment.ErrAccessDenied)

		rec := serve(uc, requestBody(t, in), &staffID)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), msgAccessDenied)
	})
}
