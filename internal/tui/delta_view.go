package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonfoot/internal/greenops"
)

// minTruncateLen is the shortest width that still gets an ellipsis.
const minTruncateLen = 3

// RenderFootprintDelta renders a styled emissions delta with sign and
// directional arrow.
//
// Increases use the warning color and an up arrow, decreases the OK color
// and a down arrow. Values that round to zero at precision render muted with
// a right arrow.
func RenderFootprintDelta(delta float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(delta*scale) / scale

	var icon, sign string
	var color lipgloss.Color

	switch {
	case rounded > 0:
		icon = IconArrowUp
		sign = "+"
		color = ColorWarning
	case rounded < 0:
		icon = IconArrowDown
		sign = "-"
		color = ColorOK
	default:
		icon = IconArrowRight
		color = ColorMuted
	}

	formatted := greenops.FormatFloat(math.Abs(rounded), precision)
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s %s", sign, formatted, icon))
}

// RenderWhatIfHeader renders the explorer title and profile name.
func RenderWhatIfHeader(name string) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("What-If Footprint Explorer"))
	if name != "" {
		sb.WriteString("\n\n")
		sb.WriteString(LabelStyle.Render("Profile: "))
		sb.WriteString(ValueStyle.Render(name))
	}
	return sb.String()
}

// RenderTotalComparison renders baseline and modified totals with the
// badge each one earns.
func RenderTotalComparison(baseline, modified float64, precision int) string {
	var sb strings.Builder

	sb.WriteString(LabelStyle.Render("Baseline:  "))
	sb.WriteString(ValueStyle.Render(FormatAmount(baseline, precision)))
	sb.WriteString("  ")
	sb.WriteString(RenderBadge(greenops.DeriveBadge(baseline)))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Modified:  "))
	sb.WriteString(ValueStyle.Render(FormatAmount(modified, precision)))
	sb.WriteString("  ")
	sb.WriteString(RenderBadge(greenops.DeriveBadge(modified)))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("Change:    "))
	sb.WriteString(RenderFootprintDelta(modified-baseline, precision))

	return sb.String()
}

// RenderWhatIfHelp renders the keyboard shortcut help text.
func RenderWhatIfHelp(editing bool) string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"Enter: Cycle choice / edit number",
		"r: Reset field",
		"R: Reset all",
		"q: Quit",
	}
	if editing {
		shortcuts = []string{"Enter: Apply", "Esc: Cancel edit"}
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}

// RenderError renders an inline error line.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return CriticalStyle.Render("Error: " + err.Error())
}

// truncate shortens s to maxLen runes, ending in an ellipsis when there is
// room for one.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
