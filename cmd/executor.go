package cmd

import (
	"context"
	"envmanager/internal/console"
	"envmanager/internal/envstore"
	"envmanager/internal/logger"
	"envmanager/internal/menu"
	"envmanager/internal/paths"
	"errors"
	"fmt"
	"io"
	"os"
)

// Execute loads the env file and runs the interactive menu until the user exits.
// It returns the process exit code. Fatal errors panic with logger.FatalError.
func Execute(ctx context.Context, opts Options, in *os.File, out io.Writer) int {
	defer logger.Recover(ctx)

	logger.Info(ctx, "Using env file '{{_File_}}%s{{|-|}}'.", paths.ResolveEnvFile(opts.File))
	store, err := envstore.Open(ctx, opts.File)
	if err != nil {
		logger.FatalNoTrace(ctx, "Failed to load '{{_File_}}%s{{|-|}}': %v", opts.File, err)
	}
	if !store.Exists() {
		fmt.Fprintf(out, "Creating new env file: %s\n", opts.File)
	}

	session := menu.New(store, console.NewLineReader(in, out), out)
	err = session.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, console.ErrInterrupted):
		fmt.Fprintln(out, "\nOperation cancelled. Exiting...")
		logger.Info(ctx, "Session cancelled by interrupt.")
		return 0
	default:
		logger.FatalNoTrace(ctx, "%v", err)
		return 1
	}
}
