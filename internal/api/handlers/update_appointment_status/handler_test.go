package update_appointment_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	if r, ok := args.Get(0).(*models.AppointmentResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(svc AppointmentService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	return r
}

func patch(router *mux.Router, id, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id+"/status", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	appointmentID, userID := uuid.New(), uuid.New()

	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, appointmentID, mock.MatchedBy(func(req *models.UpdateStatusRequest) bool {
		return req.UserID == userID && req.Status == "cancelled" &&
			req.CancellationReason != nil && *req.CancellationReason == "заболела"
	})).Return(&models.AppointmentResponse{ID: appointmentID, Status: "cancelled"}, nil)

	rec := patch(newRouter(svc), appointmentID.String(), userID.String(),
		`{"status":"cancelled","cancellationReason":"заболела"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandle_Unauthorized(t *testing.T) {
	svc := &mockService{}
	rec := patch(newRouter(svc), uuid.NewString(), "", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_BadRequest(t *testing.T) {
	svc := &mockService{}
	router := newRouter(svc)

	rec := patch(router, "not-a-uuid", uuid.NewString(), `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = patch(router, uuid.NewString(), uuid.NewString(), `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"access denied", appointments.ErrAccessDenied, http.StatusForbidden},
		{"invalid transition", appointments.ErrInvalidTransition, http.StatusConflict},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(newRouter(svc), uuid.NewString(), uuid.NewString(), `{"status":"completed"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
