package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Summarize computes catalog statistics. The average price is summed in
// decimal and rounded to two places. Ties for oldest or most expensive go to
// the book that comes first in sequence order.
func (c *Catalog) Summarize() (types.Summary, error) {
	if len(c.books) == 0 {
		return types.Summary{}, types.ErrEmptyCatalog
	}

	sum := decimal.Zero
	oldest := c.books[0]
	priciest := c.books[0]
	for _, b := range c.books {
		sum = sum.Add(decimal.NewFromFloat(b.Price))
		if b.Year < oldest.Year {
			oldest = b
		}
		if b.Price > priciest.Price {
			priciest = b
		}
	}

	avg := sum.Div(decimal.NewFromInt(int64(len(c.books))))
	return types.Summary{
		Count:         len(c.books),
		AveragePrice:  avg.StringFixed(2),
		Oldest:        oldest,
		MostExpensive: priciest,
	}, nil
}
