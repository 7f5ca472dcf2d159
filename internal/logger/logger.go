package logger

import (
	"context"
	"envmanager/internal/console"
	"envmanager/internal/version"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// Internal helper to log with a specific timestamp
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	msgStr = console.Parse(msgStr)

	if !strings.Contains(msgStr, "\n") {
		r := slog.NewRecord(t, level, msgStr+console.Reset(), 0)
		r.Add(args...)
		_ = h.Handle(ctx, r)
		return
	}

	lines := strings.Split(msgStr, "\n")
	for i, line := range lines {
		// Append reset to every line to prevent color bleed to next timestamp
		r := slog.NewRecord(t, level, line+console.Reset(), 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the console log level
var LevelVar = new(slog.LevelVar)

// FileLevelVar controls the log file level
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel changes the console level. The file level never goes above Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

// levelLabel returns the fixed-width badge printed for a level.
func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	case LevelFatal:
		return "[FATAL ]"
	default:
		return "[" + level.String() + "]"
	}
}

func levelColor(level slog.Level) string {
	switch level {
	case LevelTrace, LevelDebug, LevelInfo:
		return console.CodeBlue
	case LevelNotice:
		return console.CodeGreen
	case LevelWarn:
		return console.CodeYellow
	case LevelError:
		return console.CodeRed
	case LevelFatal:
		return console.CodeRedBg + console.CodeWhite
	default:
		return ""
	}
}

// NewLogger builds the application logger.
// Records go to w through tint and, when logFilePath is not empty, to the log file through charm log.
func NewLogger(w io.Writer, logFilePath string) *slog.Logger {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		if stat, err := f.Stat(); err == nil {
			isTTY = (stat.Mode() & os.ModeCharDevice) != 0
		}
	}

	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			label := levelLabel(level)
			if isTTY {
				label = levelColor(level) + label + console.CodeReset
			}
			a.Value = slog.StringValue(label + "  ")
		}
		return a
	}

	consoleHandler := tint.NewHandler(w, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttrConsole,
	})
	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if fileHandler := openFileHandler(w, logFilePath); fileHandler != nil {
			handlers = append(handlers, fileHandler)
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

func openFileHandler(stderr io.Writer, logFilePath string) slog.Handler {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		fmt.Fprintf(stderr, "Failed to create log folder: %v\n", err)
		return nil
	}
	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
		return nil
	}
	Cleanup()
	logFile = f

	fileLogger := charmlog.NewWithOptions(f, charmlog.Options{
		Level:           charmlog.Level(LevelTrace),
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Formatter:       charmlog.LogfmtFormatter,
		Prefix:          version.CommandName,
	})
	return &leveledHandler{Handler: fileLogger, level: FileLevelVar}
}

// Cleanup closes the log file, if one is open.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// leveledHandler gates a handler with a dynamic level and strips color codes
// from messages, since the wrapped handler writes to a file.
type leveledHandler struct {
	slog.Handler
	level slog.Leveler
}

func (h *leveledHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *leveledHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.NewRecord(r.Time, r.Level, console.StripANSI(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(a)
		return true
	})
	clean.AddAttrs(slog.String("level_name", strings.TrimSpace(levelLabel(r.Level))))
	return h.Handler.Handle(ctx, clean)
}

func (h *leveledHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *leveledHandler) WithGroup(name string) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	executable, _ := os.Executable()
	return []string{
		fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version),
		fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()),
		fmt.Sprintf("ARCH:             %s", runtime.GOARCH),
		fmt.Sprintf("OS:               %s", runtime.GOOS),
	}
}

// Fatal logs a message with system information and a stack trace at FatalLevel,
// then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var traceLines []string
	for {
		frame, more := frames.Next()
		traceLines = append(traceLines, fmt.Sprintf("  {{_TraceSourceFile_}}%s{{|-|}}:{{_TraceLineNumber_}}%d{{|-|}} ({{_TraceFunction_}}%s{{|-|}})",
			frame.File, frame.Line, filepath.Base(frame.Function)))
		if !more {
			break
		}
	}

	var infoLines []string
	for _, line := range getSystemInfo() {
		infoLines = append(infoLines, "  "+line)
	}

	output := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
	}
	logAt(ctx, now, LevelFatal, output, args...)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and panics with FatalError.
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}
