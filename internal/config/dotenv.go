package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set.
//
// A missing file is an error only when the path was given explicitly via
// ENV_FILE; the default .env is optional.
func loadDotEnv(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
