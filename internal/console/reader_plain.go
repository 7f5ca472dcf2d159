package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// PlainReader reads lines from a non-interactive source such as a pipe.
// Completion is not available.
type PlainReader struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

// NewPlainReader creates a PlainReader that prints prompts to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: in, out: out}
}

// start launches the scanner goroutine; a blocked read can then be
// abandoned when the context is cancelled.
func (r *PlainReader) start() {
	r.lines = make(chan lineResult)
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(r.in)
		scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
		for scanner.Scan() {
			r.lines <- lineResult{line: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		r.lines <- lineResult{err: err}
	}()
}

// ReadLine prints prompt and waits for the next input line.
func (r *PlainReader) ReadLine(ctx context.Context, prompt string, _ Completer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}
	r.once.Do(r.start)

	fmt.Fprint(r.out, ToANSI(prompt))

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			// Keep the transcript tidy when input ends mid-prompt
			fmt.Fprintln(r.out)
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r"), nil
	}
}
