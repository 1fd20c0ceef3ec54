// Package testutils holds environment helpers shared by tests and the
// example binary.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks upward from dir until it hits a directory containing
// go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}

// LoadDotEnv loads variables from a .env file if present. With explicit
// paths it loads those; otherwise it tries the CWD and then the project
// root. Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) > 0 {
		return godotenv.Load(paths...)
	}
	if err := godotenv.Load(); err == nil {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return os.ErrNotExist
	}
	return godotenv.Load(envPath)
}

// GetEnv returns the environment variable value if set, or the default.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
