package catalog

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Sort reorders the catalog by criterion. The sort is stable: books with an
// equal key keep their previous relative order. An unknown criterion returns
// ErrInvalidSelection and leaves the order untouched.
func (c *Catalog) Sort(criterion types.SortCriterion) error {
	var less func(a, b types.Book) int
	switch criterion {
	case types.SortPriceAsc:
		less = func(a, b types.Book) int { return cmp.Compare(a.Price, b.Price) }
	case types.SortPriceDesc:
		less = func(a, b types.Book) int { return cmp.Compare(b.Price, a.Price) }
	case types.SortYearAsc:
		less = func(a, b types.Book) int { return cmp.Compare(a.Year, b.Year) }
	default:
		return types.ErrInvalidSelection
	}
	slices.SortStableFunc(c.books, less)
	c.log.Debug().Stringer("criterion", criterion).Msg("catalog sorted")
	return nil
}
