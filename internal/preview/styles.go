package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/username/daymark/internal/daycell"
)

const cellWidth = 11

// Text tones for the day number
var toneColors = map[daycell.TextTone]lipgloss.Color{
	daycell.ToneDefault:  lipgloss.Color("7"),
	daycell.ToneToday:    lipgloss.Color("117"),
	daycell.ToneInactive: lipgloss.Color("241"),
	daycell.ToneSunday:   lipgloss.Color("203"),
	daycell.ToneSaturday: lipgloss.Color("75"),
}

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(cellWidth).
			Padding(0, 1)

	todayCellStyle = cellStyle.Copy().
			BorderForeground(lipgloss.Color("117"))

	selectedCellStyle = cellStyle.Copy().
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	roundedCellStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Width(cellWidth).
				Padding(0, 1)

	lunarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	periodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0"))
)
