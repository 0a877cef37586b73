package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes a prompt and reads one line of operator input.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter reads lines from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// Prompt writes question and returns the next input line without its line
// terminator. A final line with no newline is returned normally; io.EOF is
// returned only when no input remains.
func (p *Prompter) Prompt(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
