package pagination

import (
	"fmt"
	"sort"

	"github.com/rshade/carbonfoot/internal/engine/batch"
	"github.com/rshade/carbonfoot/internal/footprint"
)

// resultKeys maps sort field names to the value compared for a result.
//
//nolint:gochecknoglobals // Immutable sort key table.
var resultKeys = map[string]func(r batch.Result) float64{
	"line":  func(r batch.Result) float64 { return float64(r.Line) },
	"total": func(r batch.Result) float64 { return r.Report.Breakdown.Total },
	"badge": func(r batch.Result) float64 { return float64(r.Report.Badge.Rank()) },
	"transportation": func(r batch.Result) float64 {
		return r.Report.Breakdown.Value(footprint.CategoryTransportation)
	},
	"household": func(r batch.Result) float64 { return r.Report.Breakdown.Value(footprint.CategoryHousehold) },
	"food":      func(r batch.Result) float64 { return r.Report.Breakdown.Value(footprint.CategoryFood) },
	"waste":     func(r batch.Result) float64 { return r.Report.Breakdown.Value(footprint.CategoryWaste) },
	"lifestyle": func(r batch.Result) float64 { return r.Report.Breakdown.Value(footprint.CategoryLifestyle) },
}

// ValidResultFields returns the sortable field names in sorted order.
func ValidResultFields() []string {
	fields := make([]string, 0, len(resultKeys))
	for f := range resultKeys {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// IsValidResultField reports whether field can be used with SortResults.
func IsValidResultField(field string) bool {
	_, ok := resultKeys[field]
	return ok
}

// SortResults returns a stably sorted copy of results. Failed results keep
// their relative order after every successful one. An empty field returns
// the results unchanged.
func SortResults(results []batch.Result, field, order string) ([]batch.Result, error) {
	if field == "" {
		return results, nil
	}
	key, ok := resultKeys[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, ValidResultFields())
	}

	sorted := make([]batch.Result, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aOK, bOK := a.Report != nil, b.Report != nil
		if aOK != bOK {
			return aOK
		}
		if !aOK {
			return false
		}
		if order == SortOrderDesc {
			return key(a) > key(b)
		}
		return key(a) < key(b)
	})
	return sorted, nil
}
