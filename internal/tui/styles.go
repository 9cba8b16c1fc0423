// Package tui renders carbonfoot reports for the terminal and hosts the
// interactive what-if explorer.
//
// Static views are plain lipgloss strings and degrade to unstyled text when
// the output is not a terminal. The explorer is a Bubble Tea model.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("39")  // blue
	ColorBorder    = lipgloss.Color("240") // dark gray
	ColorLabel     = lipgloss.Color("245") // gray
	ColorValue     = lipgloss.Color("255") // white
	ColorHighlight = lipgloss.Color("213") // pink
	ColorMuted     = lipgloss.Color("241")
	ColorOK        = lipgloss.Color("42")  // green
	ColorWarning   = lipgloss.Color("214") // orange
	ColorCritical  = lipgloss.Color("196") // red
	ColorSpinner   = lipgloss.Color("69")
	ColorSelected  = lipgloss.Color("57")
)

// Icons used across views.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconCursor     = "▌"
	IconBullet     = "•"
	IconLeaf       = "🍃"
)

// Shared styles.
//
//nolint:gochecknoglobals // Style definitions are immutable after init.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorValue).
				Background(ColorSelected).
				Bold(true)
)
