package cmd

import (
	"envmanager/internal/console"
	"envmanager/internal/constants"
	"envmanager/internal/version"
	"fmt"
	"io"
	"strings"
)

// PrintHelp writes usage information to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, console.Parse(GetUsage()))
}

// GetUsage returns usage information as a string with semantic tags.
func GetUsage() string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appCmd := version.CommandName

	printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageOption_}}--file{{|-|}} <{{_UsageFile_}}path{{|-|}}>]", appCmd))
	printStr("")
	printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	printStr("Interactively list, add, edit and delete KEY=VALUE pairs in an env file.")
	printStr("The file is rewritten after every change. Press Tab at key prompts for")
	printStr("suggestions, and Ctrl+C at any time to exit.")
	printStr("")
	printStr("Flags:")
	printStr("")
	printStr("{{_UsageOption_}}-f --file{{|-|}} <{{_UsageFile_}}path{{|-|}}>")
	printStr(fmt.Sprintf("\tPath to env file (default: {{_UsageFile_}}%s{{|-|}})", constants.DefaultEnvFileName))
	printStr("{{_UsageOption_}}-h --help{{|-|}}")
	printStr("\tShow this usage information")

	return sb.String()
}
