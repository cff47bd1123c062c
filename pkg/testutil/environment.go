package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// Env is an isolated XDG environment rooted in a temporary directory
type Env struct {
	Root       string
	ConfigHome string
	StateHome  string
}

// ConfigFile returns the path of name under the argspec config directory
func (e *Env) ConfigFile(name string) string {
	return filepath.Join(e.ConfigHome, "argspec", name)
}

// LogFile returns the default log file path inside the environment
func (e *Env) LogFile() string {
	return filepath.Join(e.StateHome, "argspec", "argspec.log")
}

// IsolateXDG points the XDG base directories at a fresh temporary tree and
// clears ARGSPEC_* variables for the duration of the test.
func IsolateXDG(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "ARGSPEC_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}
