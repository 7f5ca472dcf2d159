package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeItalic    = "\033[3m"
	CodeUnderline = "\033[4m"
	CodeBlink     = "\033[5m"
	CodeReverse   = "\033[7m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeBlackBg   = "\033[40m"
	CodeRedBg     = "\033[41m"
	CodeGreenBg   = "\033[42m"
	CodeYellowBg  = "\033[43m"
	CodeBlueBg    = "\033[44m"
	CodeMagentaBg = "\033[45m"
	CodeCyanBg    = "\033[46m"
	CodeWhiteBg   = "\033[47m"
)

// semanticDefaults maps semantic tag names to fg:bg:flags style codes.
var semanticDefaults = map[string]string{
	// Log levels
	"Timestamp": "-",
	"Trace":     "blue",
	"Debug":     "blue",
	"Info":      "blue",
	"Notice":    "green",
	"Warn":      "yellow",
	"Error":     "red",
	"Fatal":     "white:red",

	// Stack traces
	"TraceHeader":     "red",
	"TraceFooter":     "red",
	"TraceSourceFile": "cyan::b",
	"TraceLineNumber": "yellow::b",
	"TraceFunction":   "green::b",

	// Application output
	"ApplicationName": "cyan::b",
	"Version":         "cyan",
	"File":            "cyan::b",
	"Var":             "magenta",
	"Value":           "-",
	"Heading":         "::b",
	"MenuKey":         "yellow::b",
	"Tip":             "::d",
	"Success":         "green",
	"Failure":         "red",
	"Yes":             "green",
	"No":              "red",

	// Usage and command line errors
	"UserCommand":            "yellow::b",
	"UserCommandError":       "red::u",
	"UserCommandErrorMarker": "red",
	"UsageCommand":           "yellow::b",
	"UsageOption":            "yellow",
	"UsageFile":              "cyan::b",
}

var ansiMap = map[string]string{
	"-":       CodeReset,
	"reset":   CodeReset,
	"black":   CodeBlack,
	"red":     CodeRed,
	"green":   CodeGreen,
	"yellow":  CodeYellow,
	"blue":    CodeBlue,
	"magenta": CodeMagenta,
	"cyan":    CodeCyan,
	"white":   CodeWhite,

	"blackbg":   CodeBlackBg,
	"redbg":     CodeRedBg,
	"greenbg":   CodeGreenBg,
	"yellowbg":  CodeYellowBg,
	"bluebg":    CodeBlueBg,
	"magentabg": CodeMagentaBg,
	"cyanbg":    CodeCyanBg,
	"whitebg":   CodeWhiteBg,

	// Flag characters
	"b": CodeBold,
	"d": CodeDim,
	"i": CodeItalic,
	"u": CodeUnderline,
	"l": CodeBlink,
	"r": CodeReverse,
}
