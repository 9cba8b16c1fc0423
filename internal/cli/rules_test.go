package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_JSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "", "rules", "--output", "json")
	require.NoError(t, err)

	var sets []struct {
		Category string `json:"category"`
		Tables   []struct {
			Name    string             `json:"name"`
			Default float64            `json:"default"`
			Weights map[string]float64 `json:"weights"`
		} `json:"tables"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	require.Len(t, sets, 5)
	assert.Equal(t, "transportation", sets[0].Category)
	assert.Equal(t, "lifestyle", sets[4].Category)

	for _, s := range sets {
		for _, table := range s.Tables {
			assert.NotEmpty(t, table.Weights, "%s.%s has no weights", s.Category, table.Name)
		}
	}
}

func TestRules_Table(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "TRANSPORTATION")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "diesel")
}

func TestRules_BadOutput(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "", "rules", "--output", "xml")
	require.Error(t, err)
}
