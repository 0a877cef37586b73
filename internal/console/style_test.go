package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

func TestStylerPlain(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyler(false)
	s.Success(&buf, "ok")
	s.Failure(&buf, "bad")
	assert.Equal(t, "ok\nbad\n", buf.String())
}

func TestStylerColored(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyler(true)
	s.Failure(&buf, "bad")
	assert.Contains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), "bad")
}

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf, false), "non-file writer")
	assert.False(t, ColorEnabled(&buf, true), "disabled by flag")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&buf, false), "disabled by NO_COLOR")
}

func TestRenderBooks(t *testing.T) {
	out, err := renderBooks([]types.Book{
		{Title: "Dune", Author: "Herbert", Price: 20, Year: 1965},
		{Title: "Emma", Author: "Austen", Price: 9.99, Year: 1815},
	})
	assert.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "$20")
	assert.Contains(t, out, "$9.99")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "Emma"))
}
