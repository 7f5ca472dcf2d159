package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"envmanager/cmd"
	"envmanager/internal/console"
	"envmanager/internal/logger"
	"envmanager/internal/paths"
	"envmanager/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger(os.Stderr, paths.GetLogFilePath()))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Defer cleanup to ensure it runs even if we return early or panic
	defer cleanup(ctx)

	// Recover from logger.FatalError to ensure cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()

	opts, err := cmd.Parse(os.Args[1:])
	if errors.Is(err, cmd.ErrHelp) {
		cmd.PrintHelp(os.Stdout)
		return 0
	}
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	logger.Info(ctx, "Starting {{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version)
	return cmd.Execute(ctx, opts, os.Stdin, os.Stdout)
}

func cleanup(ctx context.Context) {
	logger.Info(ctx, "Cleaning up...")
	logger.Cleanup()
}
