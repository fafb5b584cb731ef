package calendar

import (
	"context"
	"time"

	"github.com/username/daymark/internal/marking"
	"go.uber.org/zap"
)

// CompositeSource overlays primary markings on top of holiday markings.
// A date present in both keeps the primary descriptor with Rest OR-ed in.
// Holiday failures degrade to primary markings only.
type CompositeSource struct {
	primary  Source
	holidays Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, holidays Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		holidays: holidays,
		logger:   logger,
	}
}

// MonthMarkings merges both sources for the month
func (cs *CompositeSource) MonthMarkings(ctx context.Context, year int, month time.Month) (map[string]marking.Descriptor, error) {
	primary, err := cs.primary.MonthMarkings(ctx, year, month)
	if err != nil {
		return nil, err
	}

	holidays, err := cs.holidays.MonthMarkings(ctx, year, month)
	if err != nil {
		cs.logger.Warn("Holiday source failed, using primary markings only",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Error(err))
		return primary, nil
	}

	merged := make(map[string]marking.Descriptor, len(primary)+len(holidays))
	for key, d := range holidays {
		merged[key] = d
	}
	for key, d := range primary {
		if h, ok := holidays[key]; ok && h.Rest {
			d.Rest = true
		}
		merged[key] = d
	}

	return merged, nil
}
