package cmd

import (
	"envmanager/internal/constants"
	"io"

	"github.com/spf13/pflag"
)

// NewFlagSet defines the flags accepted on the command line.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("envmanager", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringP("file", "f", constants.DefaultEnvFileName, "Path to env file")
	fs.BoolP("help", "h", false, "Show help")
	return fs
}
