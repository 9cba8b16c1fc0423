package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders and defaults.
const (
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderAsc
	sortPartsMax     = 2
)

// Validation errors.
var (
	ErrNegative            = errors.New("pagination values cannot be negative")
	ErrMixedModes          = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage = errors.New("page-size must be specified together with page")
	ErrInvalidSortFormat   = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'total:desc')")
	ErrEmptySortField      = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder    = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField    = errors.New("invalid sort field")
)

// Params holds CLI pagination flags. Offset mode (--limit/--offset) and page
// mode (--page/--page-size) are mutually exclusive. A zero Limit means no
// limit.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Validate checks bounds and mode consistency.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Offset < 0 || p.Page < 0 || p.PageSize < 0 {
		return ErrNegative
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedModes
	}
	if (p.Page > 0) != (p.PageSize > 0) {
		return ErrPageSizeWithoutPage
	}
	return nil
}

// IsPageBased reports whether page mode is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any windowing is requested.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0
}

// OffsetLimit returns the effective offset and limit for either mode.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) OffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Window returns the [start, end) bounds of the requested window over total
// items. Page mode past the last page clamps to the last page; offset mode
// past the end yields an empty window.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Window(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}

	offset, limit := p.OffsetLimit()
	if p.IsPageBased() && offset >= total {
		offset = ((total - 1) / p.PageSize) * p.PageSize
	}
	if offset >= total {
		return total, total
	}

	end = total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}

// Apply returns the requested window of items.
func Apply[T any](p Params, items []T) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}

// ParseSort parses "field" or "field:order". An empty string means no
// sorting and returns an empty field.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.TrimSpace(parts[0])
	order = DefaultSortOrder
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
