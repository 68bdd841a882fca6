package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

func TestBuildDayGrid(t *testing.T) {
	booked := &domain.Appointment{
		ID:        uuid.New(),
		StartTime: tod("10:00"),
		EndTime:   tod("11:00"),
		Status:    domain.StatusConfirmed,
	}
	cancelled := &domain.Appointment{
		ID:        uuid.New(),
		StartTime: tod("14:00"),
		EndTime:   tod("15:00"),
		Status:    domain.StatusCancelled,
	}
	appointments := []*domain.Appointment{booked, cancelled}

	c := Constraints{
		BusinessHours:        weekdayHours(),
		ExistingAppointments: domain.ActiveIntervals(appointments),
	}

	grid := BuildDayGrid(monday, c, 30, appointments)

	require.Len(t, grid, 18)
	assert.Equal(t, "09:00", grid[0].Time.String())
	assert.Equal(t, "17:30", grid[17].Time.String())

	byTime := make(map[string]domain.TimeSlot, len(grid))
	for _, cell := range grid {
		byTime[cell.Time.String()] = cell
	}

	assert.False(t, byTime["10:00"].Available)
	assert.Same(t, booked, byTime["10:00"].Appointment)
	assert.False(t, byTime["10:30"].Available)
	assert.Nil(t, byTime["10:30"].Appointment)

	assert.True(t, byTime["14:00"].Available)
	assert.Nil(t, byTime["14:00"].Appointment)

	assert.Equal(t, 16, CountAvailable(grid))
}

func TestBuildDayGrid_BookedCellUnavailableWithoutBlocking(t *testing.T) {
	booked := &domain.Appointment{
		ID:        uuid.New(),
		StartTime: tod("10:00"),
		EndTime:   tod("11:00"),
		Status:    domain.StatusPending,
	}

	// Общая сетка салона: записи не блокируют интервалы, но занятая ячейка не свободна
	grid := BuildDayGrid(monday, Constraints{BusinessHours: weekdayHours()}, 30, []*domain.Appointment{booked})

	byTime := make(map[string]domain.TimeSlot, len(grid))
	for _, cell := range grid {
		byTime[cell.Time.String()] = cell
	}

	assert.False(t, byTime["10:00"].Available)
	assert.Same(t, booked, byTime["10:00"].Appointment)
	assert.True(t, byTime["10:30"].Available)
	assert.True(t, byTime["09:30"].Available)
	assert.Equal(t, 17, CountAvailable(grid))
}

func TestBuildDayGrid_LongServiceMarksTailUnavailable(t *testing.T) {
	grid := BuildDayGrid(monday, Constraints{BusinessHours: weekdayHours()}, 90, nil)

	require.Len(t, grid, 18)
	for _, cell := range grid {
		expected := cell.Time.AddMinutes(90) <= tod("18:00")
		assert.Equal(t, expected, cell.Available, "cell %s", cell.Time)
	}
}

func TestBuildDayGrid_Closed(t *testing.T) {
	grid := BuildDayGrid(sunday, Constraints{BusinessHours: weekdayHours()}, 30, nil)

	require.NotNil(t, grid)
	assert.Empty(t, grid)
}

func TestBuildDayGrid_AnchoredToOpenTime(t *testing.T) {
	c := Constraints{BusinessHours: []domain.BusinessHours{hours(time.Monday, "09:15", "10:30")}}

	grid := BuildDayGrid(monday, c, 30, nil)

	times := make([]types.TimeOfDay, 0, len(grid))
	for _, cell := range grid {
		times = append(times, cell.Time)
	}
	assert.Equal(t, []types.TimeOfDay{tod("09:15"), tod("09:45"), tod("10:15")}, times)
	assert.False(t, grid[2].Available)
}

func TestFormatBusinessHours(t *testing.T) {
	hrs := []domain.BusinessHours{
		hours(time.Tuesday, "10:00", "19:00"),
		{DayOfWeek: int(time.Sunday), IsClosed: true},
		hours(time.Monday, "09:00", "18:00"),
		{DayOfWeek: int(time.Wednesday), OpenTime: todPtr("09:00")},
	}

	summary := FormatBusinessHours(hrs)

	assert.Equal(t, "Sunday: Closed\nMonday: 09:00 - 18:00\nTuesday: 10:00 - 19:00\nWednesday: Closed", summary)
	// входной срез не сортируется на месте
	assert.Equal(t, int(time.Tuesday), hrs[0].DayOfWeek)
}

func TestFormatBusinessHours_Empty(t *testing.T) {
	assert.Equal(t, "", FormatBusinessHours(nil))
}
