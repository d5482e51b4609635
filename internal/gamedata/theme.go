package gamedata

import "github.com/gdamore/tcell/v2"

// ThemeDef defines the display colors loaded from JSON. All values are hex
// color codes (e.g., "#00FF00").
type ThemeDef struct {
	Snake  string `json:"snake"`  // Snake body and head
	Food   string `json:"food"`   // Food marker
	Border string `json:"border"` // Field border
	Text   string `json:"text"`   // Info panel and menu text
}

// tcellColor parses a hex color, falling back to white on bad data.
func tcellColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// SnakeColor returns the snake color as a tcell.Color.
func (t *ThemeDef) SnakeColor() tcell.Color { return tcellColor(t.Snake) }

// FoodColor returns the food color as a tcell.Color.
func (t *ThemeDef) FoodColor() tcell.Color { return tcellColor(t.Food) }

// BorderColor returns the border color as a tcell.Color.
func (t *ThemeDef) BorderColor() tcell.Color { return tcellColor(t.Border) }

// TextColor returns the text color as a tcell.Color.
func (t *ThemeDef) TextColor() tcell.Color { return tcellColor(t.Text) }

// LoadTheme loads the display theme from the embedded theme.json file.
func LoadTheme() (*ThemeDef, error) {
	theme, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// MustLoadTheme loads the display theme, panicking on error.
func MustLoadTheme() *ThemeDef {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
