package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/session"
)

// Display characters for the play field.
const (
	borderRune = '#'
	foodRune   = '@'
	headRune   = 'O'
	bodyRune   = 'o'
)

// Renderer handles drawing the game to the screen. It consumes read-only
// session snapshots and never mutates game state.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeDef
	tick   time.Duration
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef, tick time.Duration) *Renderer {
	return &Renderer{screen: screen, theme: theme, tick: tick}
}

// Render draws one full frame: info panel, bordered field, food, snake and
// the status line for the current phase.
func (r *Renderer) Render(snap session.Snapshot) {
	r.screen.Clear()

	r.drawInfoPanel(snap)
	r.drawField(snap)
	r.drawStatusLine(snap)

	r.screen.Show()
}

// drawInfoPanel draws the three text rows above the field.
func (r *Renderer) drawInfoPanel(snap session.Snapshot) {
	style := tcell.StyleDefault.Foreground(r.theme.TextColor())
	x := snap.OffsetX + fieldLeft
	y := snap.OffsetY

	r.drawText(x, y, "=== GRIDSNAKE ===", style)
	r.drawText(x, y+1, fmt.Sprintf("Score: %d  |  Length: %d  |  Speed: %dms",
		snap.Score, len(snap.Snake), r.tick.Milliseconds()), style)
	r.drawText(x, y+2, "Controls: Arrow Keys=Move  P=Pause  Q=Quit", style)
}

// drawField draws the border, the food and the snake.
func (r *Renderer) drawField(snap session.Snapshot) {
	top := snap.OffsetY + fieldTop
	left := snap.OffsetX + fieldLeft
	w := snap.Board.Width
	h := snap.Board.Height

	borderStyle := tcell.StyleDefault.Foreground(r.theme.BorderColor())
	for x := -1; x <= w; x++ {
		r.screen.SetContent(left+x, top-1, borderRune, borderStyle)
		r.screen.SetContent(left+x, top+h, borderRune, borderStyle)
	}
	for y := 0; y < h; y++ {
		r.screen.SetContent(left-1, top+y, borderRune, borderStyle)
		r.screen.SetContent(left+w, top+y, borderRune, borderStyle)
	}

	foodStyle := tcell.StyleDefault.Foreground(r.theme.FoodColor())
	r.screen.SetContent(left+snap.Food.X, top+snap.Food.Y, foodRune, foodStyle)

	snakeStyle := tcell.StyleDefault.Foreground(r.theme.SnakeColor()).Bold(true)
	for i, seg := range snap.Snake {
		ch := bodyRune
		if i == 0 {
			ch = headRune
		}
		r.screen.SetContent(left+seg.X, top+seg.Y, ch, snakeStyle)
	}
}

// drawStatusLine draws the message row below the field for the waiting,
// paused and game-over phases.
func (r *Renderer) drawStatusLine(snap session.Snapshot) {
	y := snap.OffsetY + fieldTop + snap.Board.Height + 1
	x := snap.OffsetX + fieldLeft

	switch snap.Phase {
	case session.PhaseWaitingForStart:
		style := tcell.StyleDefault.Foreground(r.theme.BorderColor())
		r.drawText(x, y, "*** Press arrow key to start ***", style)
	case session.PhasePaused:
		style := tcell.StyleDefault.Foreground(r.theme.BorderColor())
		r.drawText(x, y, "*** PAUSED - Press P to continue ***", style)
	case session.PhaseGameOver:
		style := tcell.StyleDefault.Foreground(r.theme.FoodColor())
		msg := fmt.Sprintf("*** GAME OVER (%s)! Final Score: %d - Press R to restart or Q to quit ***",
			causeLabel(snap.Cause), snap.Score)
		r.drawText(x, y, msg, style)
	}
}

// causeLabel returns the user-facing description of a game-over cause.
func causeLabel(c session.Cause) string {
	switch c {
	case session.CauseWallCollision:
		return "hit the wall"
	case session.CauseSelfCollision:
		return "hit yourself"
	default:
		return "unknown"
	}
}

// RenderMenu draws the field-size selection menu. Presets that do not fit
// the current terminal are flagged.
func (r *Renderer) RenderMenu(sizes []gamedata.FieldSizeDef) {
	r.screen.Clear()

	termW, termH := r.screen.Size()
	textStyle := tcell.StyleDefault.Foreground(r.theme.TextColor())
	okStyle := tcell.StyleDefault.Foreground(r.theme.SnakeColor())
	badStyle := tcell.StyleDefault.Foreground(r.theme.FoodColor())

	const startX, startY = 2, 2
	r.drawText(startX, startY, "=== GRIDSNAKE - SELECT FIELD SIZE ===", textStyle)

	for i, size := range sizes {
		y := startY + 2 + i*2
		line := fmt.Sprintf("  %d. %s (%dx%d)", i+1, size.Name, size.Width, size.Height)
		if Fits(termW, termH, size.Width, size.Height) {
			r.drawText(startX, y, line, okStyle)
		} else {
			r.drawText(startX, y, line+" [TOO LARGE]", badStyle)
		}
	}

	y := startY + 2 + len(sizes)*2 + 1
	r.drawText(startX, y, fmt.Sprintf("Press 1-%d to select a size, or Q to quit", len(sizes)), textStyle)
	r.drawText(startX, y+1, fmt.Sprintf("Terminal size: %dx%d", termW, termH), textStyle)

	r.screen.Show()
}

// RenderSizeError draws the too-small screen for a rejected preset and
// leaves it up until the caller reads a key.
func (r *Renderer) RenderSizeError(sizeErr *SizeError) {
	r.screen.Clear()

	textStyle := tcell.StyleDefault.Foreground(r.theme.TextColor())
	badStyle := tcell.StyleDefault.Foreground(r.theme.FoodColor())

	r.drawText(2, 2, "ERROR: Terminal too small for this field size!", badStyle)
	r.drawText(2, 4, fmt.Sprintf("Selected: %s", sizeErr.Name), textStyle)
	r.drawText(2, 5, fmt.Sprintf("Required: %dx%d", sizeErr.RequiredW, sizeErr.RequiredH), textStyle)
	r.drawText(2, 6, fmt.Sprintf("Current:  %dx%d", sizeErr.TermW, sizeErr.TermH), textStyle)
	r.drawText(2, 8, "Please resize your terminal or select a smaller field size.", textStyle)
	r.drawText(2, 9, "Press any key to return to the menu...", textStyle)

	r.screen.Show()
}

// drawText writes a string starting at the given cell.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
