package console

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	// ansiRegex matches CSI escape sequences
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

	// semanticMap stores lower-cased semantic tag -> style code
	semanticMap = map[string]string{}
)

func init() {
	ResetSemanticTags()
}

// ResetSemanticTags restores the built-in semantic tag definitions.
func ResetSemanticTags() {
	semanticMap = make(map[string]string, len(semanticDefaults))
	for name, style := range semanticDefaults {
		semanticMap[strings.ToLower(name)] = style
	}
}

// RegisterSemanticTag registers (or replaces) a semantic tag with its style code.
// The name may be given with or without the surrounding underscores.
func RegisterSemanticTag(name, style string) {
	name = strings.Trim(name, "_")
	semanticMap[strings.ToLower(name)] = style
}

// ExpandTags converts semantic tags to direct {{|style|}} tags.
// Unknown semantic tags are removed.
func ExpandTags(text string) string {
	return semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3]) // Strip "{{_" and "_}}"
		if style, ok := semanticMap[content]; ok {
			return "{{|" + style + "|}}"
		}
		return ""
	})
}

// ToANSI converts semantic and direct tags to ANSI escape sequences.
// When colors are disabled all tags are stripped instead.
func ToANSI(text string) string {
	if !colorsEnabled() {
		return Strip(text)
	}

	text = ExpandTags(text)
	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{|" and "|}}"
		return parseStyleCodeToANSI(content)
	})
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return StripANSI(text)
}

// StripANSI removes ANSI escape sequences from text.
func StripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}

// Reset returns the reset sequence, or "" when colors are disabled.
func Reset() string {
	if !colorsEnabled() {
		return ""
	}
	return CodeReset
}

// Wrap styles text with a semantic tag without parsing text itself,
// so user supplied values are printed verbatim.
func Wrap(tag, text string) string {
	return ToANSI("{{_"+tag+"_}}") + text + Reset()
}

// Fprintln writes text to w with tags rendered, followed by a newline.
func Fprintln(w io.Writer, text string) {
	fmt.Fprintln(w, ToANSI(text))
}

// parseStyleCodeToANSI parses fg:bg:flags format and returns ANSI codes
func parseStyleCodeToANSI(content string) string {
	if content == "-" || content == "reset" {
		return CodeReset
	}

	parts := strings.Split(content, ":")
	var codes strings.Builder

	// Part 0: Foreground color
	if len(parts) > 0 && parts[0] != "" && parts[0] != "-" {
		codes.WriteString(colorToANSI(parts[0], false))
	}

	// Part 1: Background color
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		codes.WriteString(colorToANSI(parts[1], true))
	}

	// Part 2: Flags (each character is a flag: b=bold, u=underline, etc.)
	if len(parts) > 2 {
		for _, flag := range strings.ToLower(parts[2]) {
			if code, ok := ansiMap[string(flag)]; ok {
				codes.WriteString(code)
			}
		}
	}

	return codes.String()
}

func colorToANSI(name string, background bool) string {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "#") {
		if c := preferredProfile.Color(name); c != nil {
			return wrapSequence(c.Sequence(background))
		}
		return ""
	}
	if background {
		name += "bg"
	}
	return ansiMap[name]
}

// wrapSequence ensures a color sequence part is wrapped in CSI delimiters
func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	if strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\033[" + seq + "m"
}
