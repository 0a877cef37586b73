package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// ParsePrice parses operator price input. Surrounding whitespace is ignored.
// The value must be a finite number greater than zero.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validPrice(p) {
		return 0, types.ErrInvalidPrice
	}
	return p, nil
}

// ParseYear parses operator year input as a base-10 integer. No range check
// is applied.
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, types.ErrInvalidYear
	}
	return y, nil
}

// ParseSortCriterion maps a sort sub-menu choice ("1", "2", "3") to a
// criterion.
func ParseSortCriterion(s string) (types.SortCriterion, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, types.ErrInvalidSelection
	}
	c := types.SortCriterion(n)
	if !c.Valid() {
		return 0, types.ErrInvalidSelection
	}
	return c, nil
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
