// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// NewSimulationScreen creates a screen backed by tcell's in-memory
// terminal, for tests that drive the frame loop without a real terminal.
// The returned SimulationScreen injects key events.
func NewSimulationScreen(width, height int) (*Screen, tcell.SimulationScreen, error) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		return nil, nil, err
	}
	s.SetSize(width, height)
	return &Screen{screen: s}, s, nil
}

// Close finalizes the screen and restores terminal state. Safe to defer;
// every exit path must reach it so the terminal is never left raw.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// HasPendingEvent reports whether a PollEvent call would return without
// blocking. Used by the frame loop to drain input once per tick.
func (s *Screen) HasPendingEvent() bool {
	return s.screen.HasPendingEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
