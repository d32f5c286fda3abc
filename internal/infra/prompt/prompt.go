// Package prompt asks the user line-based questions on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/leanwork/lean/internal/domain"
)

// Ensure Prompter implements domain.Prompter.
var _ domain.Prompter = (*Prompter)(nil)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a new Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question until it gets a valid answer.
// An empty answer selects def; "y" and "n" are accepted in any case.
// Anything else asks again. io.EOF is returned if input ends before an answer.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		_, _ = fmt.Fprintf(p.out, "%s %s ", question, hint)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				_, _ = fmt.Fprintln(p.out)
			}
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			_, _ = fmt.Fprintln(p.out, "Please answer y or n.")
		}
	}
}

// Printf writes a message to the user.
func (p *Prompter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
