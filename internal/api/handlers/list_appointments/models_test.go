package list_appointments

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	salonID, userID, stylistID := uuid.New(), uuid.New(), uuid.New()

	r := httptest.NewRequest(http.MethodGet,
		"/salons/x/appointments?from=2030-03-04&to=2030-03-10&stylistId="+stylistID.String()+"&status=confirmed&includeInactive=true", nil)

	req, err := ToServiceRequest(r, salonID, userID)
	require.NoError(t, err)

	assert.Equal(t, salonID, req.SalonID)
	assert.Equal(t, userID, req.UserID)
	assert.True(t, req.From.Equal(time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, req.To.Equal(time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, req.StylistID)
	assert.Equal(t, stylistID, *req.StylistID)
	require.NotNil(t, req.Status)
	assert.Equal(t, "confirmed", *req.Status)
	assert.True(t, req.IncludeInactive)
}

func TestToServiceRequest_SingleDay(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/salons/x/appointments?from=2030-03-04", nil)

	req, err := ToServiceRequest(r, uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.True(t, req.To.Equal(req.From))
	assert.Nil(t, req.StylistID)
	assert.Nil(t, req.Status)
}

func TestToServiceRequest_Errors(t *testing.T) {
	for name, query := range map[string]string{
		"missing from":      "",
		"bad to":            "from=2030-03-04&to=tomorrow",
		"bad stylist":       "from=2030-03-04&stylistId=7",
		"bad inactive flag": "from=2030-03-04&includeInactive=maybe",
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/salons/x/appointments?"+query, nil)
			_, err := ToServiceRequest(r, uuid.New(), uuid.New())
			assert.Error(t, err)
		})
	}
}
