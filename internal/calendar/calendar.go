package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
)

// DayType represents the type of day in a production calendar
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
}

// Source supplies the marked dates of a month, keyed by YYYY-MM-DD
type Source interface {
	MonthMarkings(ctx context.Context, year int, month time.Month) (map[string]marking.Descriptor, error)
}

// Lookup returns the marking of a single date, or nil when the date is unmarked
func Lookup(ctx context.Context, src Source, date time.Time) (*marking.Descriptor, error) {
	markings, err := src.MonthMarkings(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to load markings for %s: %w", monthKey(date.Year(), date.Month()), err)
	}

	d, ok := markings[dateutil.ToMarkingFormat(date)]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, month)
}
