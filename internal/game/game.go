// Package game provides the frame driver: the fixed-rate loop that polls
// input, advances the session and renders, plus the start menu around it.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/board"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/session"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// Game owns the terminal screen and drives one session through the frame
// loop. Everything runs on a single goroutine; the session is never touched
// concurrently.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	sizes    []gamedata.FieldSizeDef
	sess     *session.Session
	rng      *rand.Rand
	running  bool

	// roundSpan is open from round start until game over or quit.
	roundSpan trace.Span
}

// New creates a game instance, initializing the terminal screen.
func New(cfg Config) (*Game, error) {
	sizes, err := gamedata.LoadFieldSizes()
	if err != nil {
		return nil, fmt.Errorf("loading field sizes: %w", err)
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme, cfg.tick()),
		cfg:      cfg,
		sizes:    sizes,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes the start menu and then the main frame loop. It returns nil
// on a normal quit; the terminal is restored on every exit path.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	size, ok := g.chooseFieldSize()
	if !ok {
		// Quit from the menu.
		return nil
	}

	ctx, initSpan := tracer.Start(ctx, "game.init")
	termW, termH := g.screen.Size()
	offX, offY := ui.Offsets(termW, termH, size.Width, size.Height)
	g.sess = session.New(board.New(size.Width, size.Height), offX, offY, g.rng)
	initSpan.SetAttributes(
		attribute.String("field.size", size.ID),
		attribute.Int("field.width", size.Width),
		attribute.Int("field.height", size.Height),
		attribute.Int("terminal.width", termW),
		attribute.Int("terminal.height", termH),
	)
	initSpan.End()

	g.startRound(ctx, tracer)
	g.running = true

	for g.running {
		frameStart := time.Now()

		if !g.runFrame(ctx, tracer) {
			break
		}

		// Sleep off the remaining frame budget.
		if rest := g.cfg.tick() - time.Since(frameStart); rest > 0 {
			time.Sleep(rest)
		}
	}

	g.endRound()
	return nil
}

// runFrame executes one frame: drain input, then advance and render. It
// returns false once a quit arrives; the quitting frame skips the advance,
// render and sleep so the loop ends immediately, in any phase.
func (g *Game) runFrame(ctx context.Context, tracer trace.Tracer) bool {
	g.handleInput(ctx, tracer)
	if !g.running {
		return false
	}

	wasRunning := g.sess.Phase() == session.PhaseRunning
	g.sess.Advance()
	if wasRunning && g.sess.Phase() == session.PhaseGameOver {
		g.endRound()
	}

	g.renderer.Render(g.sess.Snapshot())
	return true
}

// chooseFieldSize runs the start menu with blocking input until the player
// picks a preset that fits the terminal or quits. A preset that does not
// fit shows a size-error screen and returns to the menu.
func (g *Game) chooseFieldSize() (gamedata.FieldSizeDef, bool) {
	for {
		g.renderer.RenderMenu(g.sizes)

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if ActionForKey(ev) == ActionQuit {
				return gamedata.FieldSizeDef{}, false
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			idx := int(ev.Rune() - '1')
			if idx < 0 || idx >= len(g.sizes) {
				continue
			}
			size := g.sizes[idx]
			termW, termH := g.screen.Size()
			if ui.Fits(termW, termH, size.Width, size.Height) {
				return size, true
			}
			reqW, reqH := ui.RequiredSize(size.Width, size.Height)
			g.renderer.RenderSizeError(&ui.SizeError{
				Name:      size.Name,
				RequiredW: reqW,
				RequiredH: reqH,
				TermW:     termW,
				TermH:     termH,
			})
			g.screen.PollEvent() // any key returns to the menu
		}
	}
}

// handleInput drains pending terminal events for this tick, stopping at a
// quit. No pending event is the normal case and returns immediately.
func (g *Game) handleInput(ctx context.Context, tracer trace.Tracer) {
	for g.running && g.screen.HasPendingEvent() {
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			g.apply(ctx, tracer, ActionForKey(ev))
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// apply executes one semantic action against the session.
func (g *Game) apply(ctx context.Context, tracer trace.Tracer, a Action) {
	if dir, ok := a.Direction(); ok {
		g.sess.RequestDirection(dir)
		return
	}

	switch a {
	case ActionPauseToggle:
		g.sess.TogglePause()
	case ActionRestart:
		if g.sess.Phase() == session.PhaseGameOver {
			g.sess.Restart()
			g.startRound(ctx, tracer)
		}
	case ActionQuit:
		g.running = false
	}
}

// startRound opens the telemetry span covering one round of play.
func (g *Game) startRound(ctx context.Context, tracer trace.Tracer) {
	_, g.roundSpan = tracer.Start(ctx, "game.round")
}

// endRound closes the round span with the final score and outcome. Safe to
// call twice; the second call is a no-op.
func (g *Game) endRound() {
	if g.roundSpan == nil {
		return
	}
	snap := g.sess.Snapshot()
	g.roundSpan.SetAttributes(
		attribute.Int("round.score", snap.Score),
		attribute.Int("round.snake_length", len(snap.Snake)),
		attribute.Int64("round.ticks", int64(g.sess.Ticks())),
		attribute.String("round.outcome", snap.Cause.String()),
	)
	g.roundSpan.End()
	g.roundSpan = nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
