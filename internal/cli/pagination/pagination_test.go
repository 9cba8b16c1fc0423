package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/engine/batch"
	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/report"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "zero value", params: Params{}},
		{name: "offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: ErrNegative},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: ErrNegative},
		{name: "negative page size", params: Params{Page: 1, PageSize: -1}, wantErr: ErrNegative},
		{name: "mixed modes", params: Params{Page: 1, PageSize: 5, Offset: 3}, wantErr: ErrMixedModes},
		{name: "page without size", params: Params{Page: 1}, wantErr: ErrPageSizeWithoutPage},
		{name: "size without page", params: Params{PageSize: 5}, wantErr: ErrPageSizeWithoutPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "no window", params: Params{}, total: 7, wantStart: 0, wantEnd: 7},
		{name: "limit", params: Params{Limit: 3}, total: 7, wantStart: 0, wantEnd: 3},
		{name: "offset and limit", params: Params{Limit: 3, Offset: 5}, total: 7, wantStart: 5, wantEnd: 7},
		{name: "offset past end", params: Params{Offset: 10}, total: 7, wantStart: 7, wantEnd: 7},
		{name: "second page", params: Params{Page: 2, PageSize: 3}, total: 7, wantStart: 3, wantEnd: 6},
		{name: "last partial page", params: Params{Page: 3, PageSize: 3}, total: 7, wantStart: 6, wantEnd: 7},
		{name: "page past end clamps", params: Params{Page: 9, PageSize: 3}, total: 7, wantStart: 6, wantEnd: 7},
		{name: "empty", params: Params{Limit: 3}, total: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c"}, Apply(Params{Offset: 1, Limit: 2}, items))
	assert.Equal(t, []string{"c", "d"}, Apply(Params{Page: 2, PageSize: 2}, items))
	assert.Empty(t, Apply(Params{Offset: 4}, items))
	assert.Empty(t, Apply(Params{Limit: 2}, []string(nil)))
}

func TestParams_IsEnabled(t *testing.T) {
	assert.False(t, Params{}.IsEnabled())
	assert.True(t, Params{Limit: 1}.IsEnabled())
	assert.True(t, Params{Page: 1, PageSize: 1}.IsEnabled())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{input: "", wantField: "", wantOrder: SortOrderAsc},
		{input: "total", wantField: "total", wantOrder: SortOrderAsc},
		{input: "total:desc", wantField: "total", wantOrder: SortOrderDesc},
		{input: " food : ASC ", wantField: "food", wantOrder: SortOrderAsc},
		{input: ":desc", wantErr: ErrEmptySortField},
		{input: "total:sideways", wantErr: ErrInvalidSortOrder},
		{input: "a:b:c", wantErr: ErrInvalidSortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func result(line int, total float64) batch.Result {
	r := report.Report{
		Breakdown: footprint.Breakdown{Transportation: total, Total: total},
		Badge:     greenops.DeriveBadge(total),
	}
	return batch.Result{Line: line, Report: &r}
}

func lines(results []batch.Result) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Line
	}
	return out
}

func TestSortResults(t *testing.T) {
	failed := batch.Result{Line: 2, Err: errors.New("bad line")}
	results := []batch.Result{result(1, 300), failed, result(3, 4), result(4, 300), result(5, 12)}

	t.Run("total ascending keeps ties stable", func(t *testing.T) {
		sorted, err := SortResults(results, "total", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 5, 1, 4, 2}, lines(sorted))
	})

	t.Run("total descending puts failures last", func(t *testing.T) {
		sorted, err := SortResults(results, "total", SortOrderDesc)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4, 5, 3, 2}, lines(sorted))
	})

	t.Run("badge rank", func(t *testing.T) {
		sorted, err := SortResults(results, "badge", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, 3, sorted[0].Line, "Planet Guardian ranks first")
	})

	t.Run("category field", func(t *testing.T) {
		sorted, err := SortResults(results, "transportation", SortOrderDesc)
		require.NoError(t, err)
		assert.Equal(t, 1, sorted[0].Line)
	})

	t.Run("does not modify input", func(t *testing.T) {
		_, err := SortResults(results, "total", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, lines(results))
	})

	t.Run("empty field is a no-op", func(t *testing.T) {
		sorted, err := SortResults(results, "", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, lines(results), lines(sorted))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := SortResults(results, "savings", SortOrderAsc)
		require.ErrorIs(t, err, ErrInvalidSortField)
	})
}

func TestValidResultFields(t *testing.T) {
	fields := ValidResultFields()
	assert.Contains(t, fields, "total")
	assert.Contains(t, fields, "line")
	assert.IsNonDecreasing(t, fields)
	for _, f := range fields {
		assert.True(t, IsValidResultField(f))
	}
	assert.False(t, IsValidResultField("cost"))
}
