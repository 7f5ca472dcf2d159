package envfile

import (
	"bufio"
	"envmanager/internal/constants"
	"io"
	"math"
	"os"
	"strings"
)

// initialLineBuffer is the starting scan buffer; it grows for longer lines.
const initialLineBuffer = 64 * 1024

// Pair is a single KEY=VALUE assignment.
type Pair struct {
	Key   string
	Value string
}

// String returns the pair formatted as a file line.
func (p Pair) String() string {
	return FormatLine(p.Key, p.Value)
}

// FormatLine returns the line written for key and value.
func FormatLine(key, value string) string {
	return key + "=" + value
}

// ParseLine splits a single line into a pair.
// ok is false for blank lines, comments and lines without '='.
func ParseLine(line string) (Pair, bool) {
	trimmed := strings.TrimSpace(line)

	// Skip empty lines and comments
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Pair{}, false
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return Pair{}, false
	}
	return Pair{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}, true
}

// Parse reads pairs from r in file order. Duplicates are returned as found;
// collapsing them is up to the caller.
func Parse(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	for scanner.Scan() {
		if p, ok := ParseLine(scanner.Text()); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs, scanner.Err()
}

// ReadFile opens filename and parses it.
// The os error is returned as-is, so callers can test for fs.ErrNotExist.
func ReadFile(filename string) ([]Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Write emits one line per pair.
func Write(w io.Writer, pairs []Pair) error {
	writer := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := writer.WriteString(p.String() + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// WriteFile truncates (or creates) filename and writes all pairs to it.
// Missing parent directories are not created.
func WriteFile(filename string, pairs []Pair) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePerm)
	if err != nil {
		return err
	}

	if err := Write(f, pairs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
