package console

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// renderBooks formats books as a table with a 1-based position column.
func renderBooks(books []types.Book) (string, error) {
	var sb strings.Builder
	table := tablewriter.NewTable(&sb)
	table.Header("#", "Title", "Author", "Price", "Year")

	for i, b := range books {
		if err := table.Append(
			strconv.Itoa(i+1),
			b.Title,
			b.Author,
			"$"+types.FormatPrice(b.Price),
			strconv.Itoa(b.Year),
		); err != nil {
			return "", err
		}
	}
	if err := table.Render(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
