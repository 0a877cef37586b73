package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Styler applies console colors to output lines. When disabled it writes
// plain text.
type Styler struct {
	heading *color.Color
	menu    *color.Color
	exit    *color.Color
	success *color.Color
	failure *color.Color
	notice  *color.Color
	listing *color.Color
}

// NewStyler returns a Styler with colors enabled or disabled for every
// attribute.
func NewStyler(enabled bool) *Styler {
	s := &Styler{
		heading: color.New(color.FgBlue),
		menu:    color.New(color.FgGreen),
		exit:    color.New(color.FgRed),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
		listing: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{s.heading, s.menu, s.exit, s.success, s.failure, s.notice, s.listing} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// ColorEnabled reports whether output to w should be colored: not disabled
// by the caller or NO_COLOR, and w is a terminal.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Each writer prints its arguments as one line in the attribute's color.
// Listing prints pre-rendered text as is.

func (s *Styler) Heading(w io.Writer, a ...any) { s.heading.Fprintln(w, a...) }
func (s *Styler) Menu(w io.Writer, a ...any)    { s.menu.Fprintln(w, a...) }
func (s *Styler) Exit(w io.Writer, a ...any)    { s.exit.Fprintln(w, a...) }
func (s *Styler) Success(w io.Writer, a ...any) { s.success.Fprintln(w, a...) }
func (s *Styler) Failure(w io.Writer, a ...any) { s.failure.Fprintln(w, a...) }
func (s *Styler) Notice(w io.Writer, a ...any)  { s.notice.Fprintln(w, a...) }
func (s *Styler) Listing(w io.Writer, a ...any) { s.listing.Fprint(w, a...) }
