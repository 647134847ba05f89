// Package config maps Viper settings onto generator configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where exports land when no directory is configured.
const DefaultOutputDir = "$HOME/.local/share/finsecure/exports"

// ExpandPath expands a leading ~ and $VAR references in a path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// OutputDir expands dir, falling back to DefaultOutputDir, and creates it.
func OutputDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultOutputDir
	}
	dir = ExpandPath(dir)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}
