package daystate

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/username/daymark/pkg/dateutil"
)

// State is a single day classification
type State string

const (
	Disabled State = "disabled"
	Selected State = "selected"
	Today    State = "today"
)

var order = []State{Disabled, Selected, Today}

// Set is an unordered collection of day states.
// Selected and Today never coexist in a Set produced by Resolve.
type Set uint8

const (
	disabledBit Set = 1 << iota
	selectedBit
	todayBit
)

func bit(s State) Set {
	switch s {
	case Disabled:
		return disabledBit
	case Selected:
		return selectedBit
	case Today:
		return todayBit
	}
	return 0
}

// NewSet builds a Set from the given states. Unknown states are ignored.
func NewSet(states ...State) Set {
	var set Set
	for _, s := range states {
		set |= bit(s)
	}
	return set
}

// Has reports whether s is in the set
func (set Set) Has(s State) bool {
	b := bit(s)
	return b != 0 && set&b != 0
}

// With returns a copy of the set with s added
func (set Set) With(s State) Set {
	return set | bit(s)
}

// States returns members in fixed order: disabled, selected, today
func (set Set) States() []State {
	states := make([]State, 0, len(order))
	for _, s := range order {
		if set.Has(s) {
			states = append(states, s)
		}
	}
	return states
}

// Len returns the number of members
func (set Set) Len() int {
	return len(set.States())
}

func (set Set) String() string {
	parts := make([]string, 0, len(order))
	for _, s := range set.States() {
		parts = append(parts, string(s))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalJSON encodes the set as an ordered list of state names
func (set Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(set.States())
}

// Context carries the selection and range inputs of a calendar view.
// An empty SelectedDate falls back to the displayed month's reference date.
// Zero MinDate or MaxDate leaves that side of the range open.
type Context struct {
	SelectedDate string
	MinDate      time.Time
	MaxDate      time.Time
}

// Options are view-wide switches
type Options struct {
	DisabledByDefault   bool
	DisableDaySelection bool
}

// Resolver classifies calendar days
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a Resolver. A nil clock uses time.Now.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve computes the state set of day as seen from displayedMonth.
//
// Disabled is decided first and independently: out-of-month days are
// always disabled, then DisabledByDefault, then the [MinDate, MaxDate]
// bounds. Selected wins over Today; the two are mutually exclusive.
func (r *Resolver) Resolve(day, displayedMonth time.Time, ctx Context, opts Options) Set {
	var set Set

	if !dateutil.SameMonth(day, displayedMonth) {
		set = set.With(Disabled)
	} else if opts.DisabledByDefault {
		set = set.With(Disabled)
	} else if dateutil.IsDateNotInRange(day, ctx.MinDate, ctx.MaxDate) {
		set = set.With(Disabled)
	}

	selectedDate := ctx.SelectedDate
	if selectedDate == "" {
		selectedDate = dateutil.ToMarkingFormat(displayedMonth)
	}

	if !opts.DisableDaySelection && selectedDate == dateutil.ToMarkingFormat(day) {
		set = set.With(Selected)
	} else if dateutil.IsToday(day, r.now()) {
		set = set.With(Today)
	}

	return set
}

// Resolve classifies day against the wall clock
func Resolve(day, displayedMonth time.Time, ctx Context, opts Options) Set {
	return NewResolver(nil).Resolve(day, displayedMonth, ctx, opts)
}
