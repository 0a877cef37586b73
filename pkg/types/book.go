package types

import "fmt"

// Book is one record in the catalog. Title is used for lookups but is not
// required to be unique.
type Book struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	Year   int     `json:"year"`
}

// String renders the book on a single line for console output.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Price: $%s, Year: %d",
		b.Title, b.Author, FormatPrice(b.Price), b.Year)
}

// EditRequest carries raw operator input for an edit. An empty field means
// the corresponding book field is left unchanged. Each field is validated
// on its own; an unparseable price or year is skipped, not rejected.
type EditRequest struct {
	Title  string
	Author string
	Price  string
	Year   string
}

// IsEmpty reports whether the request would change nothing.
func (r EditRequest) IsEmpty() bool {
	return r.Title == "" && r.Author == "" && r.Price == "" && r.Year == ""
}

// SortCriterion selects the key used by Catalog.Sort.
type SortCriterion int

// Sort criteria, numbered as in the sort sub-menu.
const (
	SortPriceAsc SortCriterion = iota + 1
	SortPriceDesc
	SortYearAsc
)

// String returns a human-readable name for the criterion.
func (c SortCriterion) String() string {
	switch c {
	case SortPriceAsc:
		return "price ascending"
	case SortPriceDesc:
		return "price descending"
	case SortYearAsc:
		return "publication year"
	default:
		return fmt.Sprintf("SortCriterion(%d)", int(c))
	}
}

// Valid reports whether c is one of the known criteria.
func (c SortCriterion) Valid() bool {
	return c >= SortPriceAsc && c <= SortYearAsc
}

// Summary holds catalog statistics. AveragePrice is already rounded to two
// decimal places and formatted.
type Summary struct {
	Count         int    `json:"count"`
	AveragePrice  string `json:"average_price"`
	Oldest        Book   `json:"oldest"`
	MostExpensive Book   `json:"most_expensive"`
}
