package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

func TestSummarizeEmpty(t *testing.T) {
	c := newTestCatalog(t)
	_, err := c.Summarize()
	assert.ErrorIs(t, err, types.ErrEmptyCatalog)
}

func TestSummarize(t *testing.T) {
	c := newTestCatalog(t,
		types.Book{Title: "Neuromancer", Author: "Gibson", Price: 10, Year: 1984},
		types.Book{Title: "Frankenstein", Author: "Shelley", Price: 20, Year: 1818},
		types.Book{Title: "Dune", Author: "Herbert", Price: 30.5, Year: 1965},
	)

	s, err := c.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "20.17", s.AveragePrice)
	assert.Equal(t, "Frankenstein", s.Oldest.Title)
	assert.Equal(t, "Dune", s.MostExpensive.Title)
}

func TestSummarizeAverageUsesDecimalSum(t *testing.T) {
	c := newTestCatalog(t,
		types.Book{Title: "a", Price: 0.1, Year: 1},
		types.Book{Title: "b", Price: 0.2, Year: 1},
	)
	s, err := c.Summarize()
	require.NoError(t, err)
	assert.Equal(t, "0.15", s.AveragePrice)
}

func TestSummarizeTiesFavorEarliest(t *testing.T) {
	c := newTestCatalog(t,
		types.Book{Title: "newest", Price: 5, Year: 2000},
		types.Book{Title: "old-first", Price: 50, Year: 1990},
		types.Book{Title: "old-second", Price: 50, Year: 1990},
	)

	s, err := c.Summarize()
	require.NoError(t, err)
	assert.Equal(t, "old-first", s.Oldest.Title)
	assert.Equal(t, "old-first", s.MostExpensive.Title)
}

func TestSummarizeSingleBook(t *testing.T) {
	only := types.Book{Title: "Solo", Author: "Han", Price: 7.333, Year: 1977}
	c := newTestCatalog(t, only)

	s, err := c.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, "7.33", s.AveragePrice)
	assert.Equal(t, only, s.Oldest)
	assert.Equal(t, only, s.MostExpensive)
}
