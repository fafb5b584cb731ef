package marking

import (
	"reflect"
	"testing"

	"github.com/username/daymark/internal/daystate"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		tag    string
		want   Type
		wantOK bool
	}{
		{"dot", TypeDot, true},
		{"multi-dot", TypeMultiDot, true},
		{"period", TypePeriod, true},
		{"multi-period", TypeMultiPeriod, true},
		{"custom", TypeCustom, true},
		{"", TypeDot, true},
		{"sparkles", TypeDot, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseType(tt.tag)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseType(%q) = (%v, %v), want (%v, %v)", tt.tag, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name   string
		d      *Descriptor
		states daystate.Set
		want   Flags
	}{
		{
			name:   "Nil descriptor uses resolved states",
			states: daystate.NewSet(daystate.Disabled, daystate.Today),
			want:   Flags{Disabled: true, Today: true},
		},
		{
			name:   "Disabled override beats resolved state",
			d:      &Descriptor{Disabled: Bool(false)},
			states: daystate.NewSet(daystate.Disabled),
			want:   Flags{},
		},
		{
			name:   "Disabled override on enabled day",
			d:      &Descriptor{Disabled: Bool(true)},
			states: daystate.NewSet(),
			want:   Flags{Disabled: true},
		},
		{
			name:   "Selected override",
			d:      &Descriptor{Selected: Bool(true)},
			states: daystate.NewSet(daystate.Today),
			want:   Flags{Selected: true, Today: true},
		},
		{
			name:   "Selected override false",
			d:      &Descriptor{Selected: Bool(false)},
			states: daystate.NewSet(daystate.Selected),
			want:   Flags{},
		},
		{
			name:   "Inactive",
			d:      &Descriptor{Inactive: Bool(true)},
			states: daystate.NewSet(),
			want:   Flags{Inactive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFlags(tt.d, tt.states); got != tt.want {
				t.Errorf("DeriveFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPrepare_Dot(t *testing.T) {
	d := &Descriptor{Marked: true, DotColor: "red", SelectedDotColor: "white"}

	plan := Prepare(TypeDot, d, daystate.NewSet())
	dot, ok := plan.(DotPlan)
	if !ok {
		t.Fatalf("Prepare(dot) = %T, want DotPlan", plan)
	}
	if dot.Color != "red" || !dot.Marked {
		t.Errorf("Prepare(dot) = %+v, want red marked dot", dot)
	}

	selected := Prepare(TypeDot, d, daystate.NewSet(daystate.Selected)).(DotPlan)
	if selected.Color != "white" {
		t.Errorf("Prepare(dot, selected).Color = %q, want white", selected.Color)
	}
	if !selected.Flags.Selected {
		t.Errorf("Prepare(dot, selected).Flags.Selected = false, want true")
	}

	noSelectedColor := Prepare(TypeDot, &Descriptor{DotColor: "red"}, daystate.NewSet(daystate.Selected)).(DotPlan)
	if noSelectedColor.Color != "red" {
		t.Errorf("Prepare(dot, selected, no selectedDotColor).Color = %q, want red", noSelectedColor.Color)
	}
}

func TestPrepare_UnknownTypeFallsBackToDot(t *testing.T) {
	plan := Prepare(Type("sparkles"), &Descriptor{DotColor: "blue"}, daystate.NewSet())

	dot, ok := plan.(DotPlan)
	if !ok {
		t.Fatalf("Prepare(sparkles) = %T, want DotPlan", plan)
	}
	if dot.Color != "blue" {
		t.Errorf("Prepare(sparkles).Color = %q, want blue", dot.Color)
	}
	if plan.Type() != TypeDot {
		t.Errorf("Prepare(sparkles).Type() = %v, want dot", plan.Type())
	}
}

func TestPrepare_MultiDot(t *testing.T) {
	d := &Descriptor{Dots: []Dot{
		{Color: "red"},
		{Color: ""},
		{Key: "b", Color: "blue", SelectedDotColor: "navy"},
	}}

	tests := []struct {
		name   string
		states daystate.Set
		want   []DotMark
	}{
		{
			name:   "Selected",
			states: daystate.NewSet(daystate.Selected),
			want:   []DotMark{{Key: "0", Color: "red"}, {Key: "b", Color: "navy"}},
		},
		{
			name:   "Not selected",
			states: daystate.NewSet(),
			want:   []DotMark{{Key: "0", Color: "red"}, {Key: "b", Color: "blue"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, ok := Prepare(TypeMultiDot, d, tt.states).(MultiDotPlan)
			if !ok {
				t.Fatalf("Prepare(multi-dot) is not a MultiDotPlan")
			}
			if !reflect.DeepEqual(plan.Dots, tt.want) {
				t.Errorf("Prepare(multi-dot).Dots = %+v, want %+v", plan.Dots, tt.want)
			}
		})
	}

	if len(d.Dots) != 3 {
		t.Errorf("Prepare modified descriptor dots: %+v", d.Dots)
	}
}

func TestPrepare_MultiDotKeysFollowFilteredPosition(t *testing.T) {
	d := &Descriptor{Dots: []Dot{
		{Color: ""},
		{Color: ""},
		{Color: "green"},
		{Key: "x", Color: "red"},
		{Color: "blue"},
	}}

	plan := Prepare(TypeMultiDot, d, daystate.NewSet()).(MultiDotPlan)
	want := []DotMark{{Key: "0", Color: "green"}, {Key: "x", Color: "red"}, {Key: "2", Color: "blue"}}

	if !reflect.DeepEqual(plan.Dots, want) {
		t.Errorf("Prepare(multi-dot).Dots = %+v, want %+v", plan.Dots, want)
	}
}

func TestPrepare_MissingListsAreEmpty(t *testing.T) {
	multiDot := Prepare(TypeMultiDot, &Descriptor{}, daystate.NewSet()).(MultiDotPlan)
	if len(multiDot.Dots) != 0 {
		t.Errorf("Prepare(multi-dot, no dots).Dots = %+v, want empty", multiDot.Dots)
	}

	multiPeriod := Prepare(TypeMultiPeriod, nil, daystate.NewSet()).(MultiPeriodPlan)
	if len(multiPeriod.Bars) != 0 {
		t.Errorf("Prepare(multi-period, nil).Bars = %+v, want empty", multiPeriod.Bars)
	}

	period := Prepare(TypePeriod, &Descriptor{Periods: []Period{{Color: ""}}}, daystate.NewSet()).(PeriodPlan)
	if period.Bar != nil {
		t.Errorf("Prepare(period, colorless).Bar = %+v, want nil", period.Bar)
	}
}

func TestPrepare_Period(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   PeriodBar
	}{
		{
			name:   "Starting day with label",
			period: Period{Color: "#50cebb", StartingDay: String("Trip")},
			want:   PeriodBar{Color: "#50cebb", Starting: true, Label: "Trip"},
		},
		{
			name:   "Starting day without label",
			period: Period{Color: "#50cebb", StartingDay: String("")},
			want:   PeriodBar{Color: "#50cebb", Starting: true, Label: " "},
		},
		{
			name:   "Continuation",
			period: Period{Color: "#50cebb"},
			want:   PeriodBar{Color: "#50cebb", Label: " "},
		},
		{
			name:   "Continuation ending",
			period: Period{Color: "#50cebb", EndingDay: true},
			want:   PeriodBar{Color: "#50cebb", Ending: true, Label: " "},
		},
		{
			name:   "Single day period",
			period: Period{Color: "#50cebb", StartingDay: String("Off"), EndingDay: true},
			want:   PeriodBar{Color: "#50cebb", Starting: true, Ending: true, Label: "Off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Descriptor{Periods: []Period{{Color: ""}, tt.period, {Color: "ignored"}}}
			plan := Prepare(TypePeriod, d, daystate.NewSet()).(PeriodPlan)

			if plan.Bar == nil {
				t.Fatalf("Prepare(period).Bar = nil, want %+v", tt.want)
			}
			if *plan.Bar != tt.want {
				t.Errorf("Prepare(period).Bar = %+v, want %+v", *plan.Bar, tt.want)
			}
			if plan.Bar.Continuation() == tt.want.Starting {
				t.Errorf("Continuation() = %v, want %v", plan.Bar.Continuation(), !tt.want.Starting)
			}
		})
	}
}

func TestPrepare_MultiPeriod(t *testing.T) {
	d := &Descriptor{Periods: []Period{
		{Color: "red", StartingDay: String("A")},
		{Color: ""},
		{Color: "blue", EndingDay: true},
	}}

	plan := Prepare(TypeMultiPeriod, d, daystate.NewSet()).(MultiPeriodPlan)
	want := []PeriodBar{
		{Color: "red", Starting: true, Label: "A"},
		{Color: "blue", Ending: true, Label: " "},
	}

	if !reflect.DeepEqual(plan.Bars, want) {
		t.Errorf("Prepare(multi-period).Bars = %+v, want %+v", plan.Bars, want)
	}
}

func TestPrepare_Custom(t *testing.T) {
	tests := []struct {
		name          string
		styles        *CustomStyles
		wantContainer Style
		wantText      Style
	}{
		{
			name:          "Radius defaulted",
			styles:        &CustomStyles{Container: Style{"backgroundColor": "green"}},
			wantContainer: Style{"backgroundColor": "green", CornerRadiusKey: DefaultCornerRadius},
		},
		{
			name:          "Explicit radius kept",
			styles:        &CustomStyles{Container: Style{CornerRadiusKey: 4}, Text: Style{"color": "white"}},
			wantContainer: Style{CornerRadiusKey: 4},
			wantText:      Style{"color": "white"},
		},
		{
			name:          "Explicit zero radius kept",
			styles:        &CustomStyles{Container: Style{CornerRadiusKey: 0}},
			wantContainer: Style{CornerRadiusKey: 0},
		},
		{
			name:     "Text only",
			styles:   &CustomStyles{Text: Style{"fontWeight": "bold"}},
			wantText: Style{"fontWeight": "bold"},
		},
		{
			name: "No custom styles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Descriptor{CustomStyles: tt.styles, DotColor: "red", Marked: true}
			plan := Prepare(TypeCustom, d, daystate.NewSet()).(CustomPlan)

			if !reflect.DeepEqual(plan.Container, tt.wantContainer) {
				t.Errorf("Container = %v, want %v", plan.Container, tt.wantContainer)
			}
			if !reflect.DeepEqual(plan.Text, tt.wantText) {
				t.Errorf("Text = %v, want %v", plan.Text, tt.wantText)
			}
			if plan.Dot.Color != "red" || !plan.Dot.Marked {
				t.Errorf("Dot = %+v, want red marked dot", plan.Dot)
			}
		})
	}
}

func TestCustomOverrides_DoesNotMutateDescriptor(t *testing.T) {
	container := Style{"backgroundColor": "green"}
	d := &Descriptor{CustomStyles: &CustomStyles{Container: container}}

	merged, _ := CustomOverrides(d)
	merged["backgroundColor"] = "red"

	if _, ok := container[CornerRadiusKey]; ok {
		t.Errorf("CustomOverrides added %s to caller container", CornerRadiusKey)
	}
	if container["backgroundColor"] != "green" {
		t.Errorf("caller container changed to %v", container["backgroundColor"])
	}
}

func TestTouchPolicy_TouchDisabled(t *testing.T) {
	tests := []struct {
		name   string
		policy TouchPolicy
		d      *Descriptor
		flags  Flags
		want   bool
	}{
		{
			name:  "No switches",
			flags: Flags{Disabled: true, Inactive: true},
			want:  false,
		},
		{
			name:   "Descriptor true beats switches",
			policy: TouchPolicy{DisabledDays: Bool(false), InactiveDays: Bool(false)},
			d:      &Descriptor{DisableTouchEvent: Bool(true)},
			flags:  Flags{Disabled: true},
			want:   true,
		},
		{
			name:   "Descriptor false beats switches",
			policy: TouchPolicy{DisabledDays: Bool(true)},
			d:      &Descriptor{DisableTouchEvent: Bool(false)},
			flags:  Flags{Disabled: true},
			want:   false,
		},
		{
			name:   "Disabled switch on disabled day",
			policy: TouchPolicy{DisabledDays: Bool(true)},
			flags:  Flags{Disabled: true},
			want:   true,
		},
		{
			name:   "Disabled switch on enabled day",
			policy: TouchPolicy{DisabledDays: Bool(true)},
			flags:  Flags{},
			want:   false,
		},
		{
			name:   "Inactive switch on inactive day",
			policy: TouchPolicy{InactiveDays: Bool(true)},
			flags:  Flags{Inactive: true},
			want:   true,
		},
		{
			name:   "Disabled switch decides before inactive switch",
			policy: TouchPolicy{DisabledDays: Bool(false), InactiveDays: Bool(true)},
			flags:  Flags{Disabled: true, Inactive: true},
			want:   false,
		},
		{
			name:   "Unset disabled switch defers to inactive switch",
			policy: TouchPolicy{InactiveDays: Bool(true)},
			flags:  Flags{Disabled: true, Inactive: true},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.TouchDisabled(tt.d, tt.flags); got != tt.want {
				t.Errorf("TouchDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLunar_Label(t *testing.T) {
	tests := []struct {
		name  string
		lunar Lunar
		want  string
	}{
		{"Regular month", Lunar{Date: "2.6"}, "2.6"},
		{"Leap month", Lunar{Date: "4.1", Leap: "윤"}, "윤달 4.1"},
		{"Empty", Lunar{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lunar.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
