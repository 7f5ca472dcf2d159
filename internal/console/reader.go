package console

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrInterrupted is returned by a LineReader when the user cancels input
// with Ctrl-C or the context is cancelled by a signal.
var ErrInterrupted = errors.New("operation cancelled")

// Completer returns the completion candidates for the current input, in display order.
type Completer func(prefix string) []string

// LineReader reads one line of user input per call.
// complete may be nil when the prompt has nothing to complete.
// End of input is reported as io.EOF.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string, complete Completer) (string, error)
}

// NewLineReader returns a TeaReader when in is a terminal and a PlainReader otherwise.
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if IsTerminal(in) {
		return NewTeaReader(in, out)
	}
	return NewPlainReader(in, out)
}
