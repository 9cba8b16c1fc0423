package suggest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/carbonfoot/internal/footprint"
)

const notSpecified = "Not specified"

// suggestionPrefix is the marker the prompt asks the model to start each line with.
const suggestionPrefix = "Suggestion:"

// BuildPrompt renders the model prompt for a profile and its estimate.
func BuildPrompt(p footprint.Profile, b footprint.Breakdown, count int) string {
	if count <= 0 {
		count = DefaultCount
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "As a carbon footprint expert, provide %d specific, actionable suggestions "+
		"to reduce carbon emissions based on this user's data:\n\n", count)

	sb.WriteString("Current Emissions (metric tons CO2/year):\n")
	for _, c := range footprint.Categories() {
		fmt.Fprintf(&sb, "- %s: %.2f\n", c.Label(), b.Value(c))
	}
	fmt.Fprintf(&sb, "Total: %.2f\n\n", b.Total)

	sb.WriteString("User Profile:\n")
	writeField(&sb, "Transport Mode", p.Transport.Mode)
	writeField(&sb, "Diet Type", p.Food.DietType)
	writeField(&sb, "Home Type", p.Household.HomeType)
	writeField(&sb, "AC Usage", p.Household.ACUsage)
	writeField(&sb, "Recycling Habits", p.Waste.Recycling)
	if p.Household.RenewableEnergy != "" {
		writeField(&sb, "Renewable Energy", p.Household.RenewableEnergy)
	}
	if p.About.Location != "" {
		writeField(&sb, "Location", p.About.Location)
	}

	fmt.Fprintf(&sb, "\nProvide %d personalized suggestions that are:\n", count)
	sb.WriteString("1. Specific and actionable\n")
	sb.WriteString("2. Include potential CO2 savings\n")
	sb.WriteString("3. Consider the user's current lifestyle\n")
	sb.WriteString("4. Focus on the areas with highest emissions\n")
	sb.WriteString(`Format each suggestion as: "Suggestion: [action] - Can save [X] metric tons CO2/year"`)
	sb.WriteString("\n")

	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = notSpecified
	}
	fmt.Fprintf(sb, "- %s: %s\n", label, value)
}

// ParseSuggestions extracts suggestion lines from model output.
//
// A line is kept when it starts with "Suggestion:" or a numbered list marker
// from "1." up to the larger of count and DefaultCount. The "Suggestion:" marker is removed, the rest is trimmed and empty
// results are dropped. The result is padded from the static list and
// truncated to count entries.
func ParseSuggestions(text string, count int) []string {
	if count <= 0 {
		count = DefaultCount
	}

	out := make([]string, 0, count)
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if !isSuggestionLine(line, max(count, DefaultCount)) {
			continue
		}
		s := strings.TrimSpace(strings.ReplaceAll(line, suggestionPrefix, ""))
		if s != "" {
			out = append(out, s)
		}
	}

	for len(out) < count {
		out = append(out, defaultAt(len(out)))
	}
	return out[:count]
}

func isSuggestionLine(line string, markers int) bool {
	if strings.HasPrefix(line, suggestionPrefix) {
		return true
	}
	for n := 1; n <= markers; n++ {
		if strings.HasPrefix(line, strconv.Itoa(n)+".") {
			return true
		}
	}
	return false
}
