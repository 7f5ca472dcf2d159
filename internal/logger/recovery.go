package logger

import (
	"context"
)

// Recover traps panics and displays them using Fatal.
// FatalError panics are re-raised so main can set the exit code.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	if fe, ok := r.(FatalError); ok {
		panic(fe)
	}
	Fatal(ctx, "panic: %v", r)
}
