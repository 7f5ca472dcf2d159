package paths

import (
	"envmanager/internal/constants"
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetStateDir returns the absolute path to the envmanager state directory
// (e.g., ~/.local/state/envmanager).
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, constants.AppDirName)
}

// GetLogFilePath returns the path of the application log file inside the state directory.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// ResolveEnvFile returns the absolute form of the backing file path for display.
// The path is returned unchanged if it cannot be resolved.
func ResolveEnvFile(file string) string {
	if file == "" {
		file = constants.DefaultEnvFileName
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return file
	}
	return abs
}
