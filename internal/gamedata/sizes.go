package gamedata

import (
	"errors"
	"fmt"
)

// FieldSizeDef defines a playing-field preset loaded from JSON.
type FieldSizeDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "small")
	Name   string `json:"name"`   // Display name (e.g., "Small")
	Width  int    `json:"width"`  // Field width in cells
	Height int    `json:"height"` // Field height in cells
}

// SizesFile represents the structure of sizes.json.
type SizesFile struct {
	Sizes []FieldSizeDef `json:"sizes"`
}

// LoadFieldSizes loads field-size presets from the embedded sizes.json file.
// Presets with non-positive dimensions are rejected.
func LoadFieldSizes() ([]FieldSizeDef, error) {
	file, err := Load[SizesFile]("sizes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Sizes) == 0 {
		return nil, errors.New("no field sizes loaded from sizes.json")
	}
	for _, s := range file.Sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("field size %q has invalid dimensions %dx%d", s.ID, s.Width, s.Height)
		}
	}
	return file.Sizes, nil
}

// MustLoadFieldSizes loads field-size presets, panicking on error.
func MustLoadFieldSizes() []FieldSizeDef {
	sizes, err := LoadFieldSizes()
	if err != nil {
		panic(err)
	}
	return sizes
}
