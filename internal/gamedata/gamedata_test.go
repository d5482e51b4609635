package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadFieldSizes(t *testing.T) {
	sizes, err := LoadFieldSizes()
	if err != nil {
		t.Fatalf("Failed to load field sizes: %v", err)
	}

	if len(sizes) != 4 {
		t.Errorf("Expected 4 field sizes, got %d", len(sizes))
	}

	expectedIDs := map[string]bool{"tiny": false, "small": false, "medium": false, "large": false}
	for _, s := range sizes {
		if _, ok := expectedIDs[s.ID]; ok {
			expectedIDs[s.ID] = true
		}
		if s.Width <= 0 || s.Height <= 0 {
			t.Errorf("Field size %q has invalid dimensions %dx%d", s.ID, s.Width, s.Height)
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected field size %q not found", id)
		}
	}
}

func TestFieldSizesOrderedByArea(t *testing.T) {
	sizes := MustLoadFieldSizes()

	// The menu lists presets smallest first.
	for i := 1; i < len(sizes); i++ {
		prev := sizes[i-1].Width * sizes[i-1].Height
		cur := sizes[i].Width * sizes[i].Height
		if cur <= prev {
			t.Errorf("Field size %q (%d cells) not larger than %q (%d cells)",
				sizes[i].ID, cur, sizes[i-1].ID, prev)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	for name, hex := range map[string]string{
		"snake":  theme.Snake,
		"food":   theme.Food,
		"border": theme.Border,
		"text":   theme.Text,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			t.Errorf("Theme color %q = %q is not a valid hex color: %v", name, hex, err)
		}
	}

	if theme.SnakeColor() == theme.FoodColor() {
		t.Error("Snake and food colors must differ")
	}
}

func TestMustParseHexColor(t *testing.T) {
	if got := MustParseHexColor("#00FF00"); got != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("MustParseHexColor(#00FF00) = %v, want pure green", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseHexColor on invalid input did not panic")
		}
	}()
	MustParseHexColor("not-a-color")
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
