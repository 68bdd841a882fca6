package types

// TimeRange полуоткрытый интервал [Start, End) внутри суток.
// Один и тот же тип описывает рабочие часы салона, окно мастера, перерыв и запись.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange создает интервал
func NewTimeRange(start, end TimeOfDay) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Duration возвращает длительность интервала в минутах (0 для пустого)
func (r TimeRange) Duration() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End - r.Start)
}

// IsEmpty проверяет, что интервал не содержит ни одной минуты
func (r TimeRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Intersect возвращает пересечение интервалов.
// Результат может быть пустым (End <= Start), это нужно проверять через IsEmpty
func (r TimeRange) Intersect(other TimeRange) TimeRange {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	return TimeRange{Start: start, End: end}
}

// Overlaps проверяет пересечение полуоткрытых интервалов: a < d && b > c.
// Интервалы, которые только касаются границами, НЕ пересекаются
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются
// - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
// - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// Contains проверяет, что интервал other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// String форматирует интервал как "HH:MM-HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
