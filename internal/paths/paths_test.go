package paths

import (
	"path/filepath"
	"testing"

	"envmanager/internal/constants"

	"github.com/adrg/xdg"
)

func TestStateDirFollowsXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	if got, want := GetStateDir(), filepath.Join(tmp, constants.AppDirName); got != want {
		t.Errorf("GetStateDir() = %q; want %q", got, want)
	}
	if got, want := GetLogFilePath(), filepath.Join(tmp, constants.AppDirName, constants.LogFileName); got != want {
		t.Errorf("GetLogFilePath() = %q; want %q", got, want)
	}
}

func TestResolveEnvFile(t *testing.T) {
	got := ResolveEnvFile("")
	if filepath.Base(got) != constants.DefaultEnvFileName {
		t.Errorf("ResolveEnvFile(\"\") = %q; want basename %q", got, constants.DefaultEnvFileName)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ResolveEnvFile(\"\") = %q; want absolute path", got)
	}
}
