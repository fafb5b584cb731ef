package marking

// Type selects how a day's marking is drawn
type Type string

const (
	TypeDot         Type = "dot"
	TypeMultiDot    Type = "multi-dot"
	TypePeriod      Type = "period"
	TypeMultiPeriod Type = "multi-period"
	TypeCustom      Type = "custom"
)

// ParseType maps a marking type tag to a Type. Empty and unknown tags
// resolve to TypeDot; ok is false only for unknown non-empty tags.
func ParseType(tag string) (t Type, ok bool) {
	switch Type(tag) {
	case TypeDot, TypeMultiDot, TypePeriod, TypeMultiPeriod, TypeCustom:
		return Type(tag), true
	case "":
		return TypeDot, true
	}
	return TypeDot, false
}

// Dot is one entry of a multi-dot marking
type Dot struct {
	Key              string `yaml:"key,omitempty" json:"key,omitempty"`
	Color            string `yaml:"color" json:"color"`
	SelectedDotColor string `yaml:"selectedDotColor,omitempty" json:"selectedDotColor,omitempty"`
}

// Period is one entry of a period marking. A non-nil StartingDay (even
// empty) marks the first day of the period and carries its label.
type Period struct {
	Color       string  `yaml:"color" json:"color"`
	StartingDay *string `yaml:"startingDay,omitempty" json:"startingDay,omitempty"`
	EndingDay   bool    `yaml:"endingDay,omitempty" json:"endingDay,omitempty"`
}

// CustomStyles are caller-supplied style overrides for the custom type
type CustomStyles struct {
	Container Style `yaml:"container,omitempty" json:"container,omitempty"`
	Text      Style `yaml:"text,omitempty" json:"text,omitempty"`
}

// Lunar is the lunar calendar annotation of a day
type Lunar struct {
	Date string `yaml:"date,omitempty" json:"date,omitempty"`
	Leap string `yaml:"leap,omitempty" json:"leap,omitempty"`
}

// leapMarker flags a leap lunar month
const leapMarker = "윤"

// Label renders the lunar annotation, prefixed for leap months
func (l Lunar) Label() string {
	if l.Leap == leapMarker {
		return "윤달 " + l.Date
	}
	return l.Date
}

// Descriptor is the marking attached to one date. Pointer fields are
// optional overrides; nil means "not supplied".
type Descriptor struct {
	Marked            bool          `yaml:"marked,omitempty" json:"marked,omitempty"`
	Disabled          *bool         `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Selected          *bool         `yaml:"selected,omitempty" json:"selected,omitempty"`
	Inactive          *bool         `yaml:"inactive,omitempty" json:"inactive,omitempty"`
	DisableTouchEvent *bool         `yaml:"disableTouchEvent,omitempty" json:"disableTouchEvent,omitempty"`
	DotColor          string        `yaml:"dotColor,omitempty" json:"dotColor,omitempty"`
	SelectedDotColor  string        `yaml:"selectedDotColor,omitempty" json:"selectedDotColor,omitempty"`
	Dots              []Dot         `yaml:"dots,omitempty" json:"dots,omitempty"`
	Periods           []Period      `yaml:"periods,omitempty" json:"periods,omitempty"`
	CustomStyles      *CustomStyles `yaml:"customStyles,omitempty" json:"customStyles,omitempty"`
	Lunar             *Lunar        `yaml:"lunar,omitempty" json:"lunar,omitempty"`
	Rest              bool          `yaml:"rest,omitempty" json:"rest,omitempty"`
}

// Bool returns a pointer to v, for optional descriptor fields
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v, for Period.StartingDay
func String(v string) *string {
	return &v
}
