// Package paths resolves configuration and database file locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

// CWD-relative defaults. Development keeps the database in a dot
// directory so the project root stays clean; production writes next to
// the working directory.
const (
	DevDBDirName  = ".todod"
	DBFileName    = "todos.db"
	ConfigDirName = "todod"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "TODOD_CONFIG_DIR"
	EnvDBPath    = "TODOD_DB_PATH"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/todod (fallback ~/.config/todod)
// macOS:   ~/Library/Application Support/todod
// Windows: %APPDATA%/todod
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, ConfigDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", ConfigDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, ConfigDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > TODOD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDBPath returns the database file path following the precedence
// chain: flag > config.yaml db_path > TODOD_DB_PATH env > env-dependent
// default. Development defaults to $(CWD)/.todod/todos.db, production to
// $(CWD)/todos.db.
func ResolveDBPath(flag, configYAMLValue, env string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		return filepath.Abs(v)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if env == types.EnvProduction {
		return filepath.Join(cwd, DBFileName), nil
	}
	return filepath.Join(cwd, DevDBDirName, DBFileName), nil
}
