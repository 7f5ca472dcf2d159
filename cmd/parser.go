package cmd

import (
	"envmanager/internal/version"
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when usage was requested.
var ErrHelp = errors.New("help requested")

// Options holds the parsed command line.
type Options struct {
	File string
}

// ParseError wraps argument parsing errors to point at the failing argument.
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred
	Message string   // The specific error message
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		if i == e.Index {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", e.Args[i]))
		} else {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", e.Args[i]))
		}
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// indent + "'" + command + " " + previous args
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	return fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n",
		indent, cmdLineStr, pointerLine, indent, e.Message, indent, version.CommandName)
}

// Parse parses the raw command line arguments (without the program name).
func Parse(args []string) (Options, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return Options{}, &ParseError{Args: args, Index: failingIndex(args, err.Error()), Message: err.Error()}
	}

	if help, _ := fs.GetBool("help"); help {
		return Options{}, ErrHelp
	}

	if fs.NArg() > 0 {
		return Options{}, &ParseError{
			Args:    args,
			Index:   positionalIndex(args),
			Message: fmt.Sprintf("unexpected argument '%s'", fs.Arg(0)),
		}
	}

	file, _ := fs.GetString("file")
	if strings.TrimSpace(file) == "" {
		return Options{}, &ParseError{Args: args, Index: len(args) - 1, Message: "the env file path cannot be empty"}
	}
	return Options{File: file}, nil
}

// failingIndex finds the argument named in a pflag error message.
func failingIndex(args []string, msg string) int {
	for i, arg := range args {
		name, _, _ := strings.Cut(arg, "=")
		if strings.HasPrefix(name, "-") && strings.Contains(msg, name) {
			return i
		}
	}
	return len(args) - 1
}

// positionalIndex returns the index of the first argument that is neither a flag nor a flag value.
func positionalIndex(args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return i + 1
		case arg == "-f" || arg == "--file":
			i++ // skip the value
		case strings.HasPrefix(arg, "-"):
		default:
			return i
		}
	}
	return len(args) - 1
}
