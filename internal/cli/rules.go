package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/config"
	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/tui"
)

// ruleTable is one lookup table in json output.
type ruleTable struct {
	Name    string             `json:"name"`
	Default float64            `json:"default"`
	Weights map[string]float64 `json:"weights"`
}

// ruleSet is one category's lookup tables in json output.
type ruleSet struct {
	Category string      `json:"category"`
	Tables   []ruleTable `json:"tables"`
}

// NewRulesCmd creates the "rules" command listing every lookup table.
func NewRulesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the lookup tables used by the estimator",
		Long: `List every categorical lookup table with its recognized values and weights.

Values not in a table, including empty answers, resolve to the table default.`,
		Example: `  carbonfoot rules
  carbonfoot rules --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				output = config.GetDefaultOutputFormat()
			}
			if err := validateOutputFormat(output); err != nil {
				return err
			}
			return renderRules(cmd.OutOrStdout(), output, footprint.Tables())
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatTable, "output format (table, json, ndjson)")

	return cmd
}

func toRuleSets(sets []footprint.RuleSet) []ruleSet {
	out := make([]ruleSet, 0, len(sets))
	for _, rs := range sets {
		tables := make([]ruleTable, 0, len(rs.Tables))
		for _, t := range rs.Tables {
			tables = append(tables, ruleTable{Name: t.Name, Default: t.Default, Weights: t.Weights()})
		}
		out = append(out, ruleSet{Category: rs.Category.String(), Tables: tables})
	}
	return out
}

func renderRules(w io.Writer, format string, sets []footprint.RuleSet) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, toRuleSets(sets))
	case config.FormatNDJSON:
		for _, rs := range toRuleSets(sets) {
			if err := renderNDJSON(w, rs); err != nil {
				return err
			}
		}
		return nil
	}

	var sb strings.Builder
	for i, rs := range sets {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(tui.HeaderStyle.Render(strings.ToUpper(rs.Category.Label())))
		sb.WriteString("\n")
		for _, t := range rs.Tables {
			sb.WriteString("  ")
			sb.WriteString(tui.LabelStyle.Render(t.Name))
			sb.WriteString(tui.SubtleStyle.Render(" (default " + formatWeight(t.Default) + ")"))
			sb.WriteString("\n")
			weights := t.Weights()
			for _, key := range t.Keys() {
				sb.WriteString(fmt.Sprintf("    %-16s ", key))
				sb.WriteString(tui.ValueStyle.Render(formatWeight(weights[key])))
				sb.WriteString("\n")
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// formatWeight prints a weight with as many decimals as it needs.
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
