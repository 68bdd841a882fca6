package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*getAvailableSlots.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/salons/{salonId}/stylists/{stylistId}/available-slots",
		NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)
	return r
}

func slotsURL(salonID, stylistID, query string) string {
	return "/salons/" + salonID + "/stylists/" + stylistID + "/available-slots?" + query
}

func TestHandle_Success(t *testing.T) {
	salonID, stylistID := uuid.New(), uuid.New()
	date := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)
	first := types.MustParseTimeOfDay("09:00")

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.SalonID == salonID && req.StylistID == stylistID &&
			req.DurationMinutes == 90 && req.Date.Equal(date) && req.ServiceID == nil
	})).Return(&getAvailableSlots.Response{
		Date:            date,
		SalonID:         salonID,
		StylistID:       stylistID,
		DurationMinutes: 90,
		Slots:           []types.TimeOfDay{first, types.MustParseTimeOfDay("09:30")},
		NextAvailable:   &first,
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		slotsURL(salonID.String(), stylistID.String(), "date=2030-03-04&duration=90"), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2030-03-04", body.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, body.Slots)
	require.NotNil(t, body.NextAvailable)
	assert.Equal(t, "09:00", *body.NextAvailable)
}

func TestHandle_EmptyDayHasNullNextAvailable(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:  time.Date(2030, time.March, 3, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeOfDay{},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		slotsURL(uuid.NewString(), uuid.NewString(), "date=2030-03-03"), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Contains(t, rec.Body.String(), `"nextAvailable":null`)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantMsg string
	}{
		{"invalid salon id", slotsURL("abc", uuid.NewString(), "date=2030-03-04"), msgInvalidSalonID},
		{"invalid stylist id", slotsURL(uuid.NewString(), "abc", "date=2030-03-04"), msgInvalidStylistID},
		{"missing date", slotsURL(uuid.NewString(), uuid.NewString(), ""), msgInvalidDate},
		{"bad date", slotsURL(uuid.NewString(), uuid.NewString(), "date=04.03.2030"), msgInvalidDate},
		{"bad duration", slotsURL(uuid.NewString(), uuid.NewString(), "date=2030-03-04&duration=x"), msgInvalidDuration},
		{"bad service id", slotsURL(uuid.NewString(), uuid.NewString(), "date=2030-03-04&serviceId=1"), msgInvalidServiceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantMsg))
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"salon not found", getAvailableSlots.ErrSalonNotFound, http.StatusNotFound},
		{"stylist not found", getAvailableSlots.ErrStylistNotFound, http.StatusNotFound},
		{"service not found", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"stylist inactive", getAvailableSlots.ErrStylistInactive, http.StatusBadRequest},
		{"date in past", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
				slotsURL(uuid.NewString(), uuid.NewString(), "date=2030-03-04"), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
