package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order; a variable set by an earlier file, or
// already present in the environment, is never overwritten.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the env files that exist in the working directory and
// returns their names.
func loadEnvFiles() ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, fmt.Errorf("load %s: %w", name, err)
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
