package types

import "errors"

// Catalog operation errors. None of them is fatal; the console reports the
// outcome and returns to the menu.
var (
	ErrInvalidPrice     = errors.New("price must be a number greater than zero")
	ErrInvalidYear      = errors.New("year must be an integer")
	ErrNotFound         = errors.New("book not found")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptyCatalog     = errors.New("catalog is empty")
)
