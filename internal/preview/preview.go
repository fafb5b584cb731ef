// Package preview draws a finished day cell in the terminal.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/daymark/internal/daycell"
	"github.com/username/daymark/internal/marking"
)

const (
	dotGlyph       = "●"
	startEdgeGlyph = "▐"
	endEdgeGlyph   = "▌"
)

// Render draws view as a bordered cell: day number and the marking row,
// plus the lunar label under multi-period bars
func Render(view daycell.View) string {
	text := dayText(view)

	if view.TextInContainer {
		return containerStyle(view).Render(lipgloss.JoinVertical(lipgloss.Left, text, markingRow(view.Plan)))
	}

	// Multi-period: only the text sits in the inner container, lunar label
	// and bars are drawn below it
	rows := []string{containerStyle(view).Render(text)}
	if view.LunarLabel != "" {
		rows = append(rows, lunarStyle.Render(view.LunarLabel))
	}
	rows = append(rows, markingRow(view.Plan))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayText(view daycell.View) string {
	style := lipgloss.NewStyle().Foreground(toneColors[view.TextTone])
	if view.Flags.Disabled {
		style = style.Faint(true)
	}
	if c := view.TextOverride.String("color"); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	return style.Render(strconv.Itoa(view.Payload.Day))
}

func containerStyle(view daycell.View) lipgloss.Style {
	style := cellStyle
	switch {
	case view.ContainerOverride != nil:
		style = roundedCellStyle
	case view.Flags.Selected:
		style = selectedCellStyle
	case view.Flags.Today:
		style = todayCellStyle
	}
	if bg := view.ContainerOverride.String("backgroundColor"); bg != "" {
		style = style.Copy().Background(lipgloss.Color(bg))
	}
	return style
}

func markingRow(plan marking.Plan) string {
	switch p := plan.(type) {
	case marking.DotPlan:
		return dot(p)
	case marking.CustomPlan:
		return dot(p.Dot)
	case marking.MultiDotPlan:
		dots := make([]string, 0, len(p.Dots))
		for _, d := range p.Dots {
			dots = append(dots, lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render(dotGlyph))
		}
		return strings.Join(dots, "")
	case marking.PeriodPlan:
		if p.Bar == nil {
			return ""
		}
		return bar(*p.Bar)
	case marking.MultiPeriodPlan:
		bars := make([]string, 0, len(p.Bars))
		for _, b := range p.Bars {
			bars = append(bars, bar(b))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, bars...)
	}
	return ""
}

func dot(p marking.DotPlan) string {
	if !p.Marked || p.Color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(dotGlyph)
}

func bar(b marking.PeriodBar) string {
	color := lipgloss.Color(b.Color)
	edge := lipgloss.NewStyle().Foreground(color)

	var sb strings.Builder
	if b.Starting {
		sb.WriteString(edge.Render(startEdgeGlyph))
	}
	sb.WriteString(periodStyle.Copy().Background(color).Render(b.Label))
	if b.Ending {
		sb.WriteString(edge.Render(endEdgeGlyph))
	}
	return sb.String()
}
