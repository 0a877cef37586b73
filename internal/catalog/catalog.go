// Package catalog implements the in-memory bookshop catalog: an ordered
// sequence of books plus the add, list, find, delete, edit, sort and
// summarize operations over it.
//
// Title lookups are case-insensitive exact matches and always act on the
// first matching record in sequence order. Titles are not unique.
package catalog

import (
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Catalog owns the book sequence. It is not safe for concurrent use; the
// console drives it from a single goroutine.
type Catalog struct {
	books []types.Book
	log   zerolog.Logger
}

// New returns an empty catalog that logs operations to log.
func New(log zerolog.Logger) *Catalog {
	return &Catalog{log: log.With().Str("component", "catalog").Logger()}
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Snapshot returns a copy of the sequence in its current order.
func (c *Catalog) Snapshot() []types.Book {
	return slices.Clone(c.books)
}

// Add validates raw operator input and appends a new book.
// Returns ErrInvalidPrice or ErrInvalidYear and leaves the catalog unchanged
// when either value does not parse.
func (c *Catalog) Add(title, author, price, year string) (types.Book, error) {
	p, err := ParsePrice(price)
	if err != nil {
		c.log.Debug().Str("price", price).Msg("add rejected")
		return types.Book{}, err
	}
	y, err := ParseYear(year)
	if err != nil {
		c.log.Debug().Str("year", year).Msg("add rejected")
		return types.Book{}, err
	}

	b := types.Book{Title: title, Author: author, Price: p, Year: y}
	c.books = append(c.books, b)
	c.log.Debug().Str("title", title).Int("count", len(c.books)).Msg("book added")
	return b, nil
}

// AddBook appends an already typed book. The price must be greater than zero.
func (c *Catalog) AddBook(b types.Book) error {
	if !validPrice(b.Price) {
		return types.ErrInvalidPrice
	}
	c.books = append(c.books, b)
	return nil
}

// List returns the books in sequence order, or ErrEmptyCatalog.
func (c *Catalog) List() ([]types.Book, error) {
	if len(c.books) == 0 {
		return nil, types.ErrEmptyCatalog
	}
	return c.Snapshot(), nil
}

// FindByTitle returns the first book whose title matches query, ignoring case.
func (c *Catalog) FindByTitle(query string) (types.Book, error) {
	i := c.indexOf(query)
	if i < 0 {
		return types.Book{}, types.ErrNotFound
	}
	return c.books[i], nil
}

// DeleteByTitle removes the first book whose title matches query, ignoring
// case, and returns it. The remaining books keep their relative order.
func (c *Catalog) DeleteByTitle(query string) (types.Book, error) {
	i := c.indexOf(query)
	if i < 0 {
		return types.Book{}, types.ErrNotFound
	}
	removed := c.books[i]
	c.books = slices.Delete(c.books, i, i+1)
	c.log.Debug().Str("title", removed.Title).Int("count", len(c.books)).Msg("book deleted")
	return removed, nil
}

// EditByTitle applies req to the first book whose title matches query. The
// book keeps its position. Empty fields are left unchanged, and a price or
// year that does not parse is skipped without failing the edit.
func (c *Catalog) EditByTitle(query string, req types.EditRequest) (types.Book, error) {
	i := c.indexOf(query)
	if i < 0 {
		return types.Book{}, types.ErrNotFound
	}

	b := &c.books[i]
	if req.Title != "" {
		b.Title = req.Title
	}
	if req.Author != "" {
		b.Author = req.Author
	}
	if req.Price != "" {
		if p, err := ParsePrice(req.Price); err == nil {
			b.Price = p
		} else {
			c.log.Debug().Str("price", req.Price).Msg("edit skipped price")
		}
	}
	if req.Year != "" {
		if y, err := ParseYear(req.Year); err == nil {
			b.Year = y
		} else {
			c.log.Debug().Str("year", req.Year).Msg("edit skipped year")
		}
	}
	return *b, nil
}

// indexOf returns the position of the first case-insensitive title match,
// or -1.
func (c *Catalog) indexOf(query string) int {
	want := lower(query)
	return slices.IndexFunc(c.books, func(b types.Book) bool {
		return lower(b.Title) == want
	})
}

// lower applies Unicode lower-case mapping. A Caser holds state, so a fresh
// one is used per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
