// Package console runs the interactive bookshop menu. It reads operator
// input line by line, drives the catalog, prints styled outcomes, and exports
// the catalog when the operator exits.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/bookshop/internal/catalog"
	"github.com/mesh-intelligence/bookshop/internal/export"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// State is the position of the command loop.
type State int

// Command loop states. Terminated is reached only through the exit command.
const (
	StateAwaitingCommand State = iota
	StateTerminated
)

// Top-level menu options.
const (
	optAdd    = "1"
	optList   = "2"
	optFind   = "3"
	optDelete = "4"
	optStats  = "5"
	optSort   = "6"
	optEdit   = "7"
	optExit   = "8"
)

// Shell is the menu-driven command loop over a single catalog.
type Shell struct {
	catalog  *catalog.Catalog
	exporter export.Exporter
	in       *Prompter
	out      io.Writer
	style    *Styler
	log      zerolog.Logger
	state    State
}

// Options configures a Shell.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Catalog  *catalog.Catalog
	Exporter export.Exporter
	Styler   *Styler
	Logger   zerolog.Logger
}

// NewShell creates a shell in the AwaitingCommand state. A nil Catalog
// starts empty and a nil Styler writes plain text.
func NewShell(opts Options) *Shell {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New(opts.Logger)
	}
	style := opts.Styler
	if style == nil {
		style = NewStyler(false)
	}
	return &Shell{
		catalog:  cat,
		exporter: opts.Exporter,
		in:       NewPrompter(opts.In, opts.Out),
		out:      opts.Out,
		style:    style,
		log:      opts.Logger.With().Str("component", "console").Logger(),
		state:    StateAwaitingCommand,
	}
}

// State returns the current loop state.
func (s *Shell) State() State {
	return s.state
}

// Run shows the menu and handles commands until the exit command. Exhausted
// input is treated as the exit command. The only error returned is an I/O or
// export failure; catalog errors are reported to the operator and the loop
// continues.
func (s *Shell) Run(ctx context.Context) error {
	for s.state != StateTerminated {
		s.printMenu()
		choice, err := s.in.Prompt("Enter an option number: ")
		if errors.Is(err, io.EOF) {
			s.log.Debug().Msg("input closed")
			return s.exit(ctx)
		}
		if err != nil {
			return err
		}

		if err := s.dispatch(ctx, strings.TrimSpace(choice)); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug().Msg("input closed mid-command")
				return s.exit(ctx)
			}
			return err
		}
	}
	return nil
}

func (s *Shell) dispatch(ctx context.Context, choice string) error {
	s.log.Debug().Str("choice", choice).Msg("command selected")
	switch choice {
	case optAdd:
		return s.addBook()
	case optList:
		return s.listBooks()
	case optFind:
		return s.findBook()
	case optDelete:
		return s.deleteBook()
	case optStats:
		s.showStats()
		return nil
	case optSort:
		return s.sortBooks()
	case optEdit:
		return s.editBook()
	case optExit:
		return s.exit(ctx)
	default:
		s.style.Failure(s.out, "Invalid selection.")
		return nil
	}
}

func (s *Shell) printMenu() {
	s.style.Heading(s.out, "\nBookshop inventory manager")
	s.style.Menu(s.out, "1. Add book")
	s.style.Menu(s.out, "2. Show catalog")
	s.style.Menu(s.out, "3. Find book by title")
	s.style.Menu(s.out, "4. Delete book")
	s.style.Menu(s.out, "5. Show statistics")
	s.style.Menu(s.out, "6. Sort books")
	s.style.Menu(s.out, "7. Edit book")
	s.style.Exit(s.out, "8. Exit")
}

// prompts asks each question in order and stops at the first read error.
func (s *Shell) prompts(questions ...string) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		a, err := s.in.Prompt(q)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (s *Shell) addBook() error {
	a, err := s.prompts("Title: ", "Author: ", "Price: ", "Publication year: ")
	if err != nil {
		return err
	}

	_, err = s.catalog.Add(a[0], a[1], a[2], a[3])
	switch {
	case errors.Is(err, types.ErrInvalidPrice):
		s.style.Failure(s.out, "Price must be a number greater than zero.")
	case errors.Is(err, types.ErrInvalidYear):
		s.style.Failure(s.out, "Publication year must be a whole number.")
	case err != nil:
		return err
	default:
		s.style.Success(s.out, "Book added successfully.")
	}
	return nil
}

func (s *Shell) listBooks() error {
	books, err := s.catalog.List()
	if errors.Is(err, types.ErrEmptyCatalog) {
		s.style.Notice(s.out, "The catalog is empty.")
		return nil
	}
	if err != nil {
		return err
	}

	table, err := renderBooks(books)
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	s.style.Heading(s.out, "Catalog:")
	s.style.Listing(s.out, table)
	return nil
}

func (s *Shell) findBook() error {
	query, err := s.in.Prompt("Title to search for: ")
	if err != nil {
		return err
	}

	b, err := s.catalog.FindByTitle(query)
	if errors.Is(err, types.ErrNotFound) {
		s.style.Failure(s.out, "Book not found.")
		return nil
	}
	if err != nil {
		return err
	}
	s.style.Heading(s.out, "Found: "+b.String())
	return nil
}

func (s *Shell) deleteBook() error {
	query, err := s.in.Prompt("Title to delete: ")
	if err != nil {
		return err
	}

	_, err = s.catalog.DeleteByTitle(query)
	if errors.Is(err, types.ErrNotFound) {
		s.style.Failure(s.out, "No book with that title in the catalog.")
		return nil
	}
	if err != nil {
		return err
	}
	s.style.Success(s.out, "Book deleted successfully.")
	return nil
}

func (s *Shell) showStats() {
	sum, err := s.catalog.Summarize()
	if err != nil {
		s.style.Notice(s.out, "No books to summarize.")
		return
	}

	s.style.Heading(s.out, fmt.Sprintf("Total books: %d", sum.Count))
	s.style.Heading(s.out, "Average price: $"+sum.AveragePrice)
	s.style.Heading(s.out, fmt.Sprintf("Oldest book: Title: %s, Author: %s, Year: %d",
		sum.Oldest.Title, sum.Oldest.Author, sum.Oldest.Year))
	s.style.Heading(s.out, fmt.Sprintf("Most expensive book: Title: %s, Author: %s, Price: $%s",
		sum.MostExpensive.Title, sum.MostExpensive.Author, types.FormatPrice(sum.MostExpensive.Price)))
}

func (s *Shell) sortBooks() error {
	s.style.Heading(s.out, "Choose a sort order:")
	s.style.Menu(s.out, "1. Price (low to high)")
	s.style.Menu(s.out, "2. Price (high to low)")
	s.style.Menu(s.out, "3. Publication year")

	choice, err := s.in.Prompt("Enter an option number: ")
	if err != nil {
		return err
	}

	criterion, err := catalog.ParseSortCriterion(choice)
	if err == nil {
		err = s.catalog.Sort(criterion)
	}
	if errors.Is(err, types.ErrInvalidSelection) {
		s.style.Failure(s.out, "Invalid option.")
		return nil
	}
	if err != nil {
		return err
	}
	s.style.Success(s.out, "Catalog sorted by "+criterion.String()+".")
	return nil
}

func (s *Shell) editBook() error {
	query, err := s.in.Prompt("Title of the book to edit: ")
	if err != nil {
		return err
	}
	if _, err := s.catalog.FindByTitle(query); errors.Is(err, types.ErrNotFound) {
		s.style.Failure(s.out, "Book not found.")
		return nil
	}

	a, err := s.prompts(
		"New title (optional): ",
		"New author (optional): ",
		"New price (optional): ",
		"New year (optional): ",
	)
	if err != nil {
		return err
	}

	req := types.EditRequest{Title: a[0], Author: a[1], Price: a[2], Year: a[3]}
	if _, err := s.catalog.EditByTitle(query, req); err != nil {
		return err
	}
	s.style.Success(s.out, "Changes applied.")
	return nil
}

// exit exports the catalog and terminates the loop. A failed export is
// returned to the caller as fatal.
func (s *Shell) exit(ctx context.Context) error {
	if s.exporter == nil {
		return errors.New("no exporter configured")
	}
	path, err := s.exporter.Export(ctx, s.catalog.Snapshot())
	if err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	s.style.Success(s.out, "Catalog saved to "+path)
	s.style.Exit(s.out, "Goodbye.")
	s.state = StateTerminated
	return nil
}
