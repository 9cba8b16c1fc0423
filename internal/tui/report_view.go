package tui

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/carbonfoot/internal/engine/batch"
	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/report"
)

// Layout constants.
const (
	borderPadding  = 2
	categoryWidth  = 16
	amountWidth    = 14
	shareBarWidth  = 20
	percentMaximum = 100
)

// UnitLabel is appended to every emissions figure.
const UnitLabel = "t CO2e"

// FormatAmount formats an emissions figure with thousands separators and
// the unit label.
func FormatAmount(v float64, precision int) string {
	return greenops.FormatFloat(v, precision) + " " + UnitLabel
}

// RenderReport renders a full report as a boxed summary. A width of zero or
// less renders without a fixed box width.
func RenderReport(r report.Report, precision, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CARBON FOOTPRINT"))
	if r.Profile.About.Name != "" {
		content.WriteString(SubtleStyle.Render("  " + r.Profile.About.Name))
	}
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Total:         "))
	content.WriteString(ValueStyle.Render(FormatAmount(r.Breakdown.Total, precision)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Badge:         "))
	content.WriteString(RenderBadge(r.Badge))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("               " + r.Badge.Description))
	content.WriteString("\n\n")

	renderBreakdownSection(&content, r.Shares, precision)
	renderComparisonSection(&content, r.Comparison, precision)
	renderEquivalentsSection(&content, r.Equivalents)
	renderAchievementsSection(&content, r.Achievements)
	renderSuggestionsSection(&content, r.Suggestions)

	body := strings.TrimRight(content.String(), "\n")
	if width > borderPadding {
		return BoxStyle.Width(width - borderPadding).Render(body)
	}
	return BoxStyle.Render(body)
}

// RenderBadge renders a badge as "icon title (level)".
func RenderBadge(b greenops.Badge) string {
	style := OKStyle
	switch b.Tier {
	case greenops.TierConsciousConsumer:
		style = ValueStyle
	case greenops.TierEcoStarter:
		style = WarningStyle
	}
	return style.Render(fmt.Sprintf("%s %s (%s)", b.Icon, b.Title, b.Level))
}

// RenderShareBar renders a horizontal bar proportional to percent.
func RenderShareBar(percent float64) string {
	if math.IsNaN(percent) || percent < 0 {
		percent = 0
	}
	filled := int(math.Round(percent / percentMaximum * shareBarWidth))
	if filled > shareBarWidth {
		filled = shareBarWidth
	}
	return OKStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", shareBarWidth-filled))
}

func renderBreakdownSection(content *strings.Builder, shares []report.Share, precision int) {
	content.WriteString(HeaderStyle.Render("BREAKDOWN"))
	content.WriteString("\n")
	for _, s := range shares {
		content.WriteString("  ")
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", categoryWidth, s.Category.Label())))
		content.WriteString(ValueStyle.Render(fmt.Sprintf("%*s", amountWidth, greenops.FormatFloat(s.Value, precision))))
		content.WriteString("  ")
		content.WriteString(RenderShareBar(s.Percent))
		content.WriteString(SubtleStyle.Render(fmt.Sprintf(" %5.1f%%", s.Percent)))
		content.WriteString("\n")
	}
	content.WriteString("\n")
}

func renderComparisonSection(content *strings.Builder, c report.Comparison, precision int) {
	content.WriteString(HeaderStyle.Render("COMPARISON"))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("  You:              "))
	content.WriteString(ValueStyle.Render(FormatAmount(c.User, precision)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("  Regional average: "))
	content.WriteString(ValueStyle.Render(FormatAmount(c.Average, precision)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("  Difference:       "))
	content.WriteString(RenderFootprintDelta(c.Delta, precision))
	content.WriteString(SubtleStyle.Render(fmt.Sprintf("  (%sx average)", greenops.FormatFloat(c.Ratio, 1))))
	content.WriteString("\n\n")
}

func renderEquivalentsSection(content *strings.Builder, e greenops.Equivalents) {
	content.WriteString(HeaderStyle.Render("IMPACT EQUIVALENTS"))
	content.WriteString("\n")
	for _, row := range e.Results() {
		content.WriteString("  ")
		content.WriteString(ValueStyle.Render(fmt.Sprintf("%*s", amountWidth, row.FormattedValue)))
		content.WriteString(" ")
		content.WriteString(LabelStyle.Render(row.Label))
		content.WriteString("\n")
	}
	content.WriteString("\n")
}

func renderAchievementsSection(content *strings.Builder, set greenops.AchievementSet) {
	content.WriteString(HeaderStyle.Render("ACHIEVEMENTS"))
	content.WriteString(SubtleStyle.Render("  score " + greenops.FormatFloat(set.Score, 1)))
	content.WriteString("\n")
	if len(set.Achievements) == 0 {
		content.WriteString("  ")
		content.WriteString(InfoStyle.Render("No achievements yet"))
		content.WriteString("\n\n")
		return
	}
	for _, a := range set.Achievements {
		content.WriteString(fmt.Sprintf("  %s ", a.Icon))
		content.WriteString(ValueStyle.Render(a.Title))
		content.WriteString(SubtleStyle.Render(": " + a.Description))
		content.WriteString("\n")
	}
	content.WriteString("\n")
}

func renderSuggestionsSection(content *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	content.WriteString(HeaderStyle.Render("SUGGESTIONS"))
	content.WriteString("\n")
	for i, s := range suggestions {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("  %d. ", i+1)))
		content.WriteString(s)
		content.WriteString("\n")
	}
}

// RenderBatchSummary renders the aggregate view of a batch run.
func RenderBatchSummary(s batch.Summary, precision, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("BATCH SUMMARY"))
	content.WriteString("\n\n")
	content.WriteString(LabelStyle.Render("Estimated:     "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(s.Profiles)))
	if s.Failed > 0 {
		content.WriteString(LabelStyle.Render("    Failed: "))
		content.WriteString(CriticalStyle.Render(strconv.Itoa(s.Failed)))
	}
	content.WriteString("\n")

	if s.Profiles > 0 {
		content.WriteString(LabelStyle.Render("Mean total:    "))
		content.WriteString(ValueStyle.Render(FormatAmount(s.Mean, precision)))
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render("Range:         "))
		content.WriteString(ValueStyle.Render(fmt.Sprintf("%s - %s",
			greenops.FormatFloat(s.Min, precision), FormatAmount(s.Max, precision))))
		content.WriteString("\n")
	}

	if len(s.ByBadge) > 0 {
		content.WriteString("\n")
		content.WriteString(HeaderStyle.Render("BADGES"))
		content.WriteString("\n")
		titles := make([]string, 0, len(s.ByBadge))
		for title := range s.ByBadge {
			titles = append(titles, title)
		}
		sort.Strings(titles)
		for _, title := range titles {
			content.WriteString("  ")
			content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", categoryWidth+4, title)))
			content.WriteString(ValueStyle.Render(strconv.Itoa(s.ByBadge[title])))
			content.WriteString("\n")
		}
	}

	body := strings.TrimRight(content.String(), "\n")
	if width > borderPadding {
		return BoxStyle.Width(width - borderPadding).Render(body)
	}
	return BoxStyle.Render(body)
}

// RenderBatchResults renders one line per result in the given order.
// Failed results show their error in place of the total.
func RenderBatchResults(results []batch.Result, precision int) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%6s  %-20s %*s  %s",
		"LINE", "NAME", amountWidth, "TOTAL", "BADGE")))
	sb.WriteString("\n")
	for _, res := range results {
		sb.WriteString(fmt.Sprintf("%6d  ", res.Line))
		if res.Err != nil || res.Report == nil {
			sb.WriteString(CriticalStyle.Render(truncate(errorText(res.Err), batchErrorWidth)))
			sb.WriteString("\n")
			continue
		}
		r := res.Report
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-20s ", truncate(r.Profile.About.Name, batchNameWidth))))
		sb.WriteString(ValueStyle.Render(fmt.Sprintf("%*s", amountWidth, greenops.FormatFloat(r.Breakdown.Total, precision))))
		sb.WriteString("  ")
		sb.WriteString(RenderBadge(r.Badge))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Batch table column widths.
const (
	batchNameWidth  = 20
	batchErrorWidth = 60
)

func errorText(err error) string {
	if err == nil {
		return "no result"
	}
	return err.Error()
}
