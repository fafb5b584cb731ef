package daycell

import (
	"time"

	"github.com/username/daymark/internal/daystate"
	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
	"go.uber.org/zap"
)

// TextTone names the text style layer the drawing layer applies to the day number
type TextTone string

const (
	ToneDefault  TextTone = "default"
	ToneToday    TextTone = "today"
	ToneInactive TextTone = "inactive"
	ToneSunday   TextTone = "sunday"
	ToneSaturday TextTone = "saturday"
)

// Style layer names, merged in order over the theme by the drawing layer
const (
	LayerBase      = "base"
	LayerToday     = "today"
	LayerContainer = "container"
	LayerDisabled  = "disabled"
	LayerSelected  = "selected"
)

// Props are the inputs of a single day cell
type Props struct {
	Date           time.Time
	DisplayedMonth time.Time
	Context        daystate.Context
	Options        daystate.Options
	Marking        *marking.Descriptor
	MarkingType    marking.Type
	// Column is the cell's position in its week row. Column 0 gets the
	// Sunday tone and column 6 the Saturday tone, as in a Sunday-first grid.
	Column             int
	AccessibilityLabel string
}

// View is everything the drawing layer needs for one day cell
type View struct {
	Date                   string            `json:"date"`
	States                 daystate.Set      `json:"states"`
	Flags                  marking.Flags     `json:"flags"`
	MarkingType            marking.Type      `json:"markingType"`
	Plan                   marking.Plan      `json:"plan"`
	TouchDisabled          bool              `json:"touchDisabled"`
	TextTone               TextTone          `json:"textTone"`
	ContainerLayers        []string          `json:"containerLayers"`
	ContainerOverride      marking.Style     `json:"containerOverride,omitempty"`
	TextOverride           marking.Style     `json:"textOverride,omitempty"`
	PeriodsContainerLayers []string          `json:"periodsContainerLayers,omitempty"`
	TextInContainer        bool              `json:"textInContainer"`
	LunarLabel             string            `json:"lunarLabel,omitempty"`
	AccessibilityRole      string            `json:"accessibilityRole,omitempty"`
	AccessibilityLabel     string            `json:"accessibilityLabel,omitempty"`
	Payload                dateutil.DateData `json:"payload"`
}

// Builder assembles day cell views
type Builder struct {
	resolver *daystate.Resolver
	touch    marking.TouchPolicy
	logger   *zap.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(resolver *daystate.Resolver, touch marking.TouchPolicy, logger *zap.Logger) *Builder {
	if resolver == nil {
		resolver = daystate.NewResolver(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		resolver: resolver,
		touch:    touch,
		logger:   logger,
	}
}

// Build resolves the day state, prepares the marking plan and derives
// the style layers of one cell
func (b *Builder) Build(props Props) View {
	states := b.resolver.Resolve(props.Date, props.DisplayedMonth, props.Context, props.Options)

	markingType, ok := marking.ParseType(string(props.MarkingType))
	if !ok {
		b.logger.Debug("Unknown marking type, drawing single dot",
			zap.String("marking_type", string(props.MarkingType)))
	}

	d := props.Marking
	if d == nil {
		d = &marking.Descriptor{}
	}

	flags := marking.DeriveFlags(d, states)
	plan := marking.Prepare(markingType, d, states)

	view := View{
		Date:               dateutil.ToMarkingFormat(props.Date),
		States:             states,
		Flags:              flags,
		MarkingType:        markingType,
		Plan:               plan,
		TouchDisabled:      b.touch.TouchDisabled(d, flags),
		TextTone:           textTone(flags, d.Rest, props.Column),
		ContainerLayers:    containerLayers(flags),
		TextInContainer:    markingType != marking.TypeMultiPeriod,
		AccessibilityLabel: props.AccessibilityLabel,
		Payload:            dateutil.ToDateData(props.Date),
	}

	if markingType == marking.TypeCustom {
		view.ContainerOverride, view.TextOverride = marking.CustomOverrides(d)
	}
	// The lunar label is drawn only under the periods container
	if markingType == marking.TypeMultiPeriod {
		view.PeriodsContainerLayers = periodsContainerLayers(flags)
		if d.Lunar != nil {
			view.LunarLabel = d.Lunar.Label()
		}
	}
	if !flags.Disabled {
		view.AccessibilityRole = "button"
	}

	b.logger.Debug("Day cell built",
		zap.String("date", view.Date),
		zap.Stringer("states", states),
		zap.String("marking_type", string(markingType)),
		zap.Bool("touch_disabled", view.TouchDisabled))

	return view
}

func textTone(flags marking.Flags, rest bool, column int) TextTone {
	switch {
	case flags.Today:
		return ToneToday
	case flags.Inactive:
		return ToneInactive
	case column == 0 || rest:
		return ToneSunday
	case column == 6:
		return ToneSaturday
	}
	return ToneDefault
}

func containerLayers(flags marking.Flags) []string {
	layers := []string{LayerBase}
	if flags.Today {
		layers = append(layers, LayerToday)
	}
	return layers
}

func periodsContainerLayers(flags marking.Flags) []string {
	layers := []string{LayerContainer}
	if flags.Disabled {
		layers = append(layers, LayerDisabled)
	}
	if flags.Selected {
		layers = append(layers, LayerSelected)
	}
	return layers
}
