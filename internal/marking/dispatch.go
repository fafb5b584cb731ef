package marking

import (
	"strconv"

	"github.com/username/daymark/internal/daystate"
)

// Flags are the effective per-day flags after applying descriptor overrides
type Flags struct {
	Selected bool `json:"selected"`
	Disabled bool `json:"disabled"`
	Inactive bool `json:"inactive"`
	Today    bool `json:"today"`
}

// DeriveFlags resolves the effective flags of a day. Descriptor overrides
// beat the resolved states; Today comes only from the resolved states.
func DeriveFlags(d *Descriptor, states daystate.Set) Flags {
	if d == nil {
		d = &Descriptor{}
	}
	return Flags{
		Selected: coalesce(d.Selected, states.Has(daystate.Selected)),
		Disabled: coalesce(d.Disabled, states.Has(daystate.Disabled)),
		Inactive: coalesce(d.Inactive, false),
		Today:    states.Has(daystate.Today),
	}
}

func coalesce(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

// Plan is the prepared, type-specific marking data for the drawing layer.
// Implementations: DotPlan, MultiDotPlan, PeriodPlan, MultiPeriodPlan, CustomPlan.
type Plan interface {
	Type() Type
	plan()
}

// DotPlan draws a single dot
type DotPlan struct {
	Color  string `json:"color,omitempty"`
	Marked bool   `json:"marked"`
	Flags  Flags  `json:"flags"`
}

// DotMark is one dot of a multi-dot plan. Key is the dot's own key or,
// when it has none, its index among the color-bearing dots.
type DotMark struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// MultiDotPlan draws a row of dots
type MultiDotPlan struct {
	Dots  []DotMark `json:"dots"`
	Flags Flags     `json:"flags"`
}

// PeriodBar is one colored period segment
type PeriodBar struct {
	Color    string `json:"color"`
	Starting bool   `json:"starting"`
	Ending   bool   `json:"ending"`
	Label    string `json:"label"`
}

// Continuation reports whether the bar continues a period from the
// previous day (shifted left and widened to join it)
func (b PeriodBar) Continuation() bool {
	return !b.Starting
}

// PeriodPlan draws at most one period bar
type PeriodPlan struct {
	Bar *PeriodBar `json:"bar,omitempty"`
}

// MultiPeriodPlan draws a horizontal sequence of bars. Day text is never
// rendered inside the bars.
type MultiPeriodPlan struct {
	Bars []PeriodBar `json:"bars"`
}

// CustomPlan draws the single dot plus caller style overrides
type CustomPlan struct {
	Dot       DotPlan `json:"dot"`
	Container Style   `json:"container,omitempty"`
	Text      Style   `json:"text,omitempty"`
}

func (DotPlan) Type() Type         { return TypeDot }
func (MultiDotPlan) Type() Type    { return TypeMultiDot }
func (PeriodPlan) Type() Type      { return TypePeriod }
func (MultiPeriodPlan) Type() Type { return TypeMultiPeriod }
func (CustomPlan) Type() Type      { return TypeCustom }

func (DotPlan) plan()         {}
func (MultiDotPlan) plan()    {}
func (PeriodPlan) plan()      {}
func (MultiPeriodPlan) plan() {}
func (CustomPlan) plan()      {}

// Prepare builds the render plan for a marking of type t. A nil descriptor
// is an empty marking; unknown types draw a single dot.
func Prepare(t Type, d *Descriptor, states daystate.Set) Plan {
	if d == nil {
		d = &Descriptor{}
	}
	flags := DeriveFlags(d, states)

	switch t {
	case TypeMultiDot:
		return MultiDotPlan{Dots: dotMarks(d.Dots, flags.Selected), Flags: flags}
	case TypePeriod:
		bars := periodBars(d.Periods)
		if len(bars) == 0 {
			return PeriodPlan{}
		}
		return PeriodPlan{Bar: &bars[0]}
	case TypeMultiPeriod:
		return MultiPeriodPlan{Bars: periodBars(d.Periods)}
	case TypeCustom:
		container, text := CustomOverrides(d)
		return CustomPlan{Dot: singleDot(d, flags), Container: container, Text: text}
	default:
		return singleDot(d, flags)
	}
}

func singleDot(d *Descriptor, flags Flags) DotPlan {
	color := d.DotColor
	if flags.Selected && d.SelectedDotColor != "" {
		color = d.SelectedDotColor
	}
	return DotPlan{Color: color, Marked: d.Marked, Flags: flags}
}

// dotMarks drops colorless dots before assigning positional keys
func dotMarks(dots []Dot, selected bool) []DotMark {
	marks := make([]DotMark, 0, len(dots))
	for _, dot := range dots {
		if dot.Color == "" {
			continue
		}
		key := dot.Key
		if key == "" {
			key = strconv.Itoa(len(marks))
		}
		color := dot.Color
		if selected && dot.SelectedDotColor != "" {
			color = dot.SelectedDotColor
		}
		marks = append(marks, DotMark{Key: key, Color: color})
	}
	return marks
}

func periodBars(periods []Period) []PeriodBar {
	bars := make([]PeriodBar, 0, len(periods))
	for _, p := range periods {
		if p.Color == "" {
			continue
		}
		bar := PeriodBar{Color: p.Color, Starting: p.StartingDay != nil, Ending: p.EndingDay, Label: " "}
		if p.StartingDay != nil && *p.StartingDay != "" {
			bar.Label = *p.StartingDay
		}
		bars = append(bars, bar)
	}
	return bars
}

// CustomOverrides returns the custom container and text overrides of d.
// A container without a corner radius gets DefaultCornerRadius. The
// descriptor is not modified.
func CustomOverrides(d *Descriptor) (container, text Style) {
	if d == nil || d.CustomStyles == nil {
		return nil, nil
	}
	if d.CustomStyles.Container != nil {
		container = d.CustomStyles.Container.WithDefault(CornerRadiusKey, DefaultCornerRadius)
	}
	return container, d.CustomStyles.Text.Clone()
}

// TouchPolicy holds the view-wide touch suppression switches. A nil
// switch is "not supplied".
type TouchPolicy struct {
	DisabledDays *bool
	InactiveDays *bool
}

// TouchDisabled decides whether presses on the day are ignored. The
// descriptor's DisableTouchEvent wins; otherwise the disabled-days switch
// applies to disabled days, then the inactive-days switch to inactive days.
func (p TouchPolicy) TouchDisabled(d *Descriptor, flags Flags) bool {
	if d != nil && d.DisableTouchEvent != nil {
		return *d.DisableTouchEvent
	}
	if p.DisabledDays != nil && flags.Disabled {
		return *p.DisabledDays
	}
	if p.InactiveDays != nil && flags.Inactive {
		return *p.InactiveDays
	}
	return false
}
