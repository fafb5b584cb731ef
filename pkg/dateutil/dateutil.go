package dateutil

import (
	"fmt"
	"time"
)

// MarkingFormat is the canonical day key layout (YYYY-MM-DD)
const MarkingFormat = "2006-01-02"

// DateData is the payload handed to day press callbacks
type DateData struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Timestamp  int64  `json:"timestamp"`
	DateString string `json:"dateString"`
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth returns the first day of the month for the given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// SameMonth returns true if two dates are in the same month of the same year
func SameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// IsToday reports whether date falls on the same calendar day as now,
// evaluated in date's location
func IsToday(date, now time.Time) bool {
	return IsSameDay(date, now.In(date.Location()))
}

// IsDateNotInRange reports whether date lies outside [minDate, maxDate].
// A zero bound is open. Bounds are inclusive and compared by day.
func IsDateNotInRange(date, minDate, maxDate time.Time) bool {
	day := dayKey(date)
	if !minDate.IsZero() && day < dayKey(minDate) {
		return true
	}
	if !maxDate.IsZero() && day > dayKey(maxDate) {
		return true
	}
	return false
}

func dayKey(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

// ToMarkingFormat formats date as YYYY-MM-DD
func ToMarkingFormat(date time.Time) string {
	return date.Format(MarkingFormat)
}

// ToDateData builds the callback payload for date. Timestamp is the UTC
// midnight of the calendar day in milliseconds.
func ToDateData(date time.Time) DateData {
	utc := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return DateData{
		Year:       date.Year(),
		Month:      int(date.Month()),
		Day:        date.Day(),
		Timestamp:  utc.UnixMilli(),
		DateString: ToMarkingFormat(date),
	}
}

// ParseDate parses date string in various formats. Dates without an
// explicit offset are taken as UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateIn(dateStr, time.UTC)
}

// ParseDateIn parses date string like ParseDate, placing dates without an
// explicit offset in loc
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	formats := []string{
		MarkingFormat,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

// Today returns today's local date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
