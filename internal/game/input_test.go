package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/board"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", keyEvent(tcell.KeyUp, 0), ActionUp},
		{"arrow down", keyEvent(tcell.KeyDown, 0), ActionDown},
		{"arrow left", keyEvent(tcell.KeyLeft, 0), ActionLeft},
		{"arrow right", keyEvent(tcell.KeyRight, 0), ActionRight},
		{"lowercase p", keyEvent(tcell.KeyRune, 'p'), ActionPauseToggle},
		{"uppercase P", keyEvent(tcell.KeyRune, 'P'), ActionPauseToggle},
		{"lowercase r", keyEvent(tcell.KeyRune, 'r'), ActionRestart},
		{"uppercase R", keyEvent(tcell.KeyRune, 'R'), ActionRestart},
		{"lowercase q", keyEvent(tcell.KeyRune, 'q'), ActionQuit},
		{"uppercase Q", keyEvent(tcell.KeyRune, 'Q'), ActionQuit},
		{"escape", keyEvent(tcell.KeyEscape, 0), ActionQuit},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
		{"unbound rune", keyEvent(tcell.KeyRune, 'x'), ActionNone},
		{"unbound key", keyEvent(tcell.KeyTab, 0), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActionForKey(tt.ev); got != tt.want {
				t.Errorf("ActionForKey(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    board.Direction
		ok     bool
	}{
		{ActionUp, board.Up, true},
		{ActionDown, board.Down, true},
		{ActionLeft, board.Left, true},
		{ActionRight, board.Right, true},
		{ActionPauseToggle, 0, false},
		{ActionRestart, 0, false},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := tt.action.Direction()
		if ok != tt.ok {
			t.Errorf("%v.Direction() ok = %v, want %v", tt.action, ok, tt.ok)
			continue
		}
		if ok && dir != tt.dir {
			t.Errorf("%v.Direction() = %v, want %v", tt.action, dir, tt.dir)
		}
	}
}

func TestConfigTickDefault(t *testing.T) {
	if got := (Config{}).tick(); got != DefaultTickInterval {
		t.Errorf("zero Config tick = %v, want %v", got, DefaultTickInterval)
	}
	if got := (Config{TickInterval: DefaultTickInterval / 2}).tick(); got != DefaultTickInterval/2 {
		t.Errorf("explicit tick = %v, want %v", got, DefaultTickInterval/2)
	}
}
