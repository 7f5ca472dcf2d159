package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "EnvManager"

// CommandName is the name of the executable command (e.g., "envmanager").
// It is initialized dynamically from the executable filename.
var CommandName = "envmanager"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X envmanager/internal/version.Version=v1.YYYYMMDD.N"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	baseName := filepath.Base(os.Args[0])

	// Fallback when running from `go run` or a test binary
	if strings.HasSuffix(baseName, ".test") || strings.HasSuffix(baseName, ".test.exe") {
		return
	}

	// Strip extension (e.g., .exe on Windows)
	name := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if name != "" && !strings.EqualFold(name, "main") {
		CommandName = name
	}
}
