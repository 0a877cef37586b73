package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookString(t *testing.T) {
	b := Book{Title: "Dune", Author: "Frank Herbert", Price: 12.5, Year: 1965}
	assert.Equal(t, "Title: Dune, Author: Frank Herbert, Price: $12.5, Year: 1965", b.String())
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{10, "10"},
		{12.5, "12.5"},
		{0.99, "0.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price))
	}
}

func TestSortCriterion(t *testing.T) {
	assert.True(t, SortPriceAsc.Valid())
	assert.True(t, SortYearAsc.Valid())
	assert.False(t, SortCriterion(0).Valid())
	assert.False(t, SortCriterion(4).Valid())
	assert.Equal(t, "price descending", SortPriceDesc.String())
	assert.Equal(t, "SortCriterion(9)", SortCriterion(9).String())
}

func TestEditRequestIsEmpty(t *testing.T) {
	assert.True(t, EditRequest{}.IsEmpty())
	assert.False(t, EditRequest{Year: "2001"}.IsEmpty())
}
