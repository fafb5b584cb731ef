package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/daymark/internal/calendar"
	"github.com/username/daymark/internal/config"
	"github.com/username/daymark/internal/daycell"
	"github.com/username/daymark/internal/daystate"
	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/internal/preview"
	"github.com/username/daymark/pkg/dateutil"
	"go.uber.org/zap"
)

func dayCmd() *cobra.Command {
	var dateStr string
	var monthStr string
	var selected string
	var markingType string
	var format string
	var label string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Resolve one calendar day and print its cell",
		Long:  "Classify a day (disabled/selected/today), prepare its marking from the marked-dates sources and print the result as a terminal preview or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.Today()
			if dateStr != "" {
				var err error
				date, err = parseDay(dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			// Default: display the month of the day itself
			month := date
			if monthStr != "" {
				var err error
				month, err = parseDay(monthStr)
				if err != nil {
					return fmt.Errorf("invalid --month: %w", err)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if markingType != "" {
				if _, ok := marking.ParseType(markingType); !ok {
					return fmt.Errorf("unknown marking type: %s", markingType)
				}
				cfg.Calendar.MarkingType = markingType
			}

			view, err := buildDayView(cmd.Context(), cfg, date, month, selected, label)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal day view: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "preview":
				fmt.Fprintln(cmd.OutOrStdout(), preview.Render(view))
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s touch:%s\n",
					view.Date, view.States, touchLabel(view.TouchDisabled))
			default:
				return fmt.Errorf("unknown --format: %s (want preview or json)", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to resolve (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&monthStr, "month", "", "Displayed month reference date (YYYY-MM-DD, default: --date)")
	cmd.Flags().StringVar(&selected, "selected", "", "Selected date (YYYY-MM-DD, default: displayed month date)")
	cmd.Flags().StringVar(&markingType, "type", "", "Marking type override (dot, multi-dot, period, multi-period, custom)")
	cmd.Flags().StringVar(&format, "format", "preview", "Output format: preview or json")
	cmd.Flags().StringVar(&label, "label", "", "Accessibility label")

	return cmd
}

// parseDay reads a command-line date as a local calendar day, so that the
// today check compares against the local wall clock
func parseDay(s string) (time.Time, error) {
	return dateutil.ParseDateIn(s, time.Local)
}

func buildDayView(ctx context.Context, cfg *config.Config, date, month time.Time, selected, label string) (daycell.View, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := buildSource(cfg)
	if err != nil {
		return daycell.View{}, err
	}

	var descriptor *marking.Descriptor
	if source != nil {
		descriptor, err = calendar.Lookup(ctx, source, date)
		if err != nil {
			return daycell.View{}, err
		}
	}

	dayCtx := cfg.Calendar.GetContext()
	dayCtx.SelectedDate = selected

	builder := daycell.NewBuilder(daystate.NewResolver(nil), cfg.Calendar.GetTouchPolicy(), logger)
	view := builder.Build(daycell.Props{
		Date:               date,
		DisplayedMonth:     month,
		Context:            dayCtx,
		Options:            cfg.Calendar.GetOptions(),
		Marking:            descriptor,
		MarkingType:        cfg.Calendar.GetMarkingType(),
		Column:             int(date.Weekday()),
		AccessibilityLabel: label,
	})

	logger.Info("Day resolved",
		zap.String("date", view.Date),
		zap.Stringer("states", view.States),
		zap.String("marking_type", string(view.MarkingType)),
		zap.Bool("marked", descriptor != nil))

	return view, nil
}

func touchLabel(disabled bool) string {
	if disabled {
		return "off"
	}
	return "on"
}
