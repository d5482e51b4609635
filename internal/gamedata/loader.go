// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS embeds the JSON data files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Load reads and unmarshals one embedded JSON file.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
