package domain

// Значения по умолчанию
const (
	DefaultServiceDurationMinutes = 60
	SlotIntervalMinutes           = 30
	DaysInWeek                    = 7
)

// Ограничения валидации
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 720 // 12 часов
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
	MaxListPeriodDays         = 93 // период выборки записей, включая обе даты
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы записей, которые не занимают время мастера
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// AllStatuses все допустимые статусы записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// WeekdayNames названия дней недели по индексу time.Weekday
var WeekdayNames = [DaysInWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}
