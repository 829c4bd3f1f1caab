package util

import (
	"os"
	"path/filepath"
	"strings"
)

func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", app, ".local", "share")
}

func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

func xdgDir(env, app string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, app)...)
}
