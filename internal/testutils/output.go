package testutils

import (
	"fmt"
	"os"
	"testing"
	"text/tabwriter"
)

// TestCase is one row of a comparison table.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// Quote renders s the way table cells show it, so whitespace stays visible.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// PrintTestTable prints a table of input, expected and returned values and
// reports every failing row through t.Errorf.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	const (
		Reset = "\033[0m"
		Red   = "\033[31m"
		Green = "\033[32m"
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "  Case\tInput\tExpected Value\tReturned Value\t\n")

	for _, tc := range cases {
		color := Green
		ptr := " "
		if !tc.Pass {
			color = Red
			ptr = Red + ">" + Reset
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s%s%s\t\n",
			ptr, tc.Name, tc.Input, tc.Expected, color, tc.Actual, Reset)
	}
	w.Flush()
	fmt.Println()

	for _, tc := range cases {
		if !tc.Pass {
			t.Errorf("%s: input %s: got %s, want %s", tc.Name, tc.Input, tc.Actual, tc.Expected)
		}
	}
}
