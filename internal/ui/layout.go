package ui

import "fmt"

// Fixed chrome around the playing field: one border cell on each side, plus
// an info panel (three text rows and a blank row that doubles as the top
// border row) above it.
const (
	// WidthOverhead is the extra columns required beyond the field width.
	WidthOverhead = 2
	// HeightOverhead is the extra rows required beyond the field height.
	HeightOverhead = 5
	// fieldTop is the row of the first field cell relative to the offset.
	fieldTop = 4
	// fieldLeft is the column of the first field cell relative to the offset.
	fieldLeft = 1
)

// RequiredSize returns the terminal dimensions needed to display a field of
// the given size with its border and info panel.
func RequiredSize(fieldW, fieldH int) (w, h int) {
	return fieldW + WidthOverhead, fieldH + HeightOverhead
}

// Fits reports whether a field of the given size can be displayed on a
// terminal of the given size.
func Fits(termW, termH, fieldW, fieldH int) bool {
	reqW, reqH := RequiredSize(fieldW, fieldH)
	return termW >= reqW && termH >= reqH
}

// Offsets returns the top-left offset that centers the play window on the
// terminal. Never negative.
func Offsets(termW, termH, fieldW, fieldH int) (x, y int) {
	reqW, reqH := RequiredSize(fieldW, fieldH)
	x = (termW - reqW) / 2
	if x < 0 {
		x = 0
	}
	y = (termH - reqH) / 2
	if y < 0 {
		y = 0
	}
	return x, y
}

// SizeError reports that the terminal is too small for a requested field
// size. It is an expected condition: the caller returns to the menu rather
// than aborting.
type SizeError struct {
	Name                 string // Field size preset name
	RequiredW, RequiredH int
	TermW, TermH         int
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("terminal too small for %s field: need %dx%d, have %dx%d",
		e.Name, e.RequiredW, e.RequiredH, e.TermW, e.TermH)
}
