package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks yes/no questions before destructive commands
type Confirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewConfirmer creates a prompt reading answers from in
func NewConfirmer(in io.Reader, out io.Writer, assumeYes bool) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Confirm prints question and reports whether the answer was yes. End of
// input counts as no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Notifier prints one-line status messages to stderr
type Notifier struct {
	out    io.Writer
	styled bool
}

// NewNotifier creates a notifier writing to out
func NewNotifier(out io.Writer, styled bool) *Notifier {
	return &Notifier{out: out, styled: styled}
}

// Notify writes message. Write errors are ignored.
func (n *Notifier) Notify(message string) {
	if n.styled {
		message = successStyle.Render(message)
	}
	_, _ = fmt.Fprintln(n.out, message)
}
