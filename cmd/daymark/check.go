package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/daymark/internal/calendar"
	"github.com/username/daymark/internal/daystate"
	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
)

func checkCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a marked-dates file",
		Long:  "Load a marked-dates file and report, per date, how many dots and periods will actually be drawn for the configured marking type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.Markings.File
			}
			if file == "" {
				return fmt.Errorf("no marked-dates file: pass --file or set markings.file")
			}

			source := calendar.NewFileSource(file, logger)
			if err := source.Load(); err != nil {
				return err
			}

			dropped, err := reportMarkings(cmd.Context(), cmd.OutOrStdout(), source, cfg.Calendar.GetMarkingType())
			if err != nil {
				return err
			}
			if dropped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n⚠️  %d item(s) without color will not be drawn\n", dropped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Marked-dates file (default: markings.file from config)")

	return cmd
}

// reportMarkings prints one line per marked date and returns the number
// of colorless dots and periods that the dispatcher drops
func reportMarkings(ctx context.Context, w io.Writer, source *calendar.FileSource, markingType marking.Type) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	dates := source.Dates()
	fmt.Fprintf(w, "📅 %d marked date(s), marking type %s\n", len(dates), markingType)

	dropped := 0
	for _, key := range dates {
		date, err := time.Parse(dateutil.MarkingFormat, key)
		if err != nil {
			return 0, fmt.Errorf("invalid date key %s: %w", key, err)
		}

		d, err := calendar.Lookup(ctx, source, date)
		if err != nil {
			return 0, err
		}
		if d == nil {
			continue
		}

		drawn := 0
		declared := 0
		switch plan := marking.Prepare(markingType, d, daystate.NewSet()).(type) {
		case marking.MultiDotPlan:
			drawn, declared = len(plan.Dots), len(d.Dots)
		case marking.MultiPeriodPlan:
			drawn, declared = len(plan.Bars), len(d.Periods)
		case marking.PeriodPlan:
			if plan.Bar != nil {
				drawn = 1
			}
			// Only the first color-bearing period is drawn; count colorless ones as dropped
			declared = drawn + countColorless(d.Periods)
		}
		dropped += declared - drawn

		fmt.Fprintf(w, "  %s | drawn %d/%d\n", key, drawn, declared)
	}

	return dropped, nil
}

func countColorless(periods []marking.Period) int {
	n := 0
	for _, p := range periods {
		if p.Color == "" {
			n++
		}
	}
	return n
}
