package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"driftdots/config"
	"driftdots/dots"
	"driftdots/player"
)

// keyHold is how long a direction stays held after its last key event.
// Terminals report presses and repeats but never releases.
const keyHold = 500 * time.Millisecond

// Glyphs
const (
	glyphDot    = '•'
	glyphPlayer = '@'
	glyphFloor  = '─'
)

var (
	styleDot    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// termGame runs the dot field inside a terminal. World coordinates stay in
// pixels; each cell covers cellW x cellH of them.
type termGame struct {
	screen tcell.Screen

	cfg    config.Config
	params dots.Params
	rng    dots.Rand

	clock *dots.Clock
	field *dots.Field

	level  player.Level
	player *player.Player
	input  player.Input

	held      player.Action
	heldUntil time.Time

	cellW, cellH float64
	viewport     dots.Vec2
	ticks        int
	showHUD      bool
}

func newTermGame(screen tcell.Screen, cfg config.Config, rng dots.Rand, cellW, cellH float64) *termGame {
	level := player.NewLevel(cfg.FloorY)
	g := &termGame{
		screen:  screen,
		cfg:     cfg,
		params:  cfg.Dots(),
		rng:     rng,
		clock:   dots.NewClock(dots.DefaultTPS),
		field:   dots.NewField(cfg.TargetDotCount),
		level:   level,
		player:  player.New(level),
		cellW:   cellW,
		cellH:   cellH,
		showHUD: true,
	}
	g.resize()
	return g
}

// resize recomputes the pixel viewport from the terminal size
func (g *termGame) resize() {
	w, h := g.screen.Size()
	g.viewport = dots.Vec2{X: float64(w) * g.cellW, Y: float64(h) * g.cellH}
}

// keyAction maps a terminal key event to a player action
func keyAction(ev *tcell.EventKey) player.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return player.ActionLeft
	case tcell.KeyRight:
		return player.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return player.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return player.ActionLeft
		case 'd', 'D':
			return player.ActionRight
		case 'q', 'Q':
			return player.ActionQuit
		}
	}
	return player.ActionNone
}

// handleEvent applies one terminal event. Returns false when the game should quit.
func (g *termGame) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyF1 {
			g.showHUD = !g.showHUD
			return true
		}

		action := keyAction(ev)
		g.input.KeyDown(action, g.cfg.PlayerSpeed)
		if g.input.Quit {
			return false
		}
		if action == player.ActionLeft || action == player.ActionRight {
			g.held = action
			g.heldUntil = now.Add(keyHold)
		}

	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}
	return true
}

// update releases expired keys and runs the fixed ticks due at now
func (g *termGame) update(now time.Time) {
	if g.held != player.ActionNone && !now.Before(g.heldUntil) {
		g.input.KeyUp(g.held)
		g.held = player.ActionNone
	}

	steps := g.clock.Tick(now)
	for i := 0; i < steps; i++ {
		g.player.Update(g.input)
		g.field.Step(g.params, g.viewport, g.rng)
		g.ticks++
	}
}

// toCell converts a world position to a terminal cell
func (g *termGame) toCell(p dots.Vec2) (int, int) {
	return int(p.X / g.cellW), int(p.Y / g.cellH)
}

// draw renders the floor, dots, player and HUD
func (g *termGame) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()

	floorY := int(g.level.Floor / g.cellH)
	if floorY >= 0 && floorY < h {
		for x := 0; x < w; x++ {
			g.screen.SetContent(x, floorY, glyphFloor, nil, styleFloor)
		}
	}

	for _, d := range g.field.Dots() {
		x, y := g.toCell(d.Position())
		if x >= 0 && x < w && y >= 0 && y < h {
			g.screen.SetContent(x, y, glyphDot, nil, styleDot)
		}
	}

	if x, y := g.toCell(g.player.Pos); x >= 0 && x < w && y >= 0 && y < h {
		g.screen.SetContent(x, y, glyphPlayer, nil, stylePlayer)
	}

	if g.showHUD {
		hud := fmt.Sprintf("dots %d/%d  cycles %d  ticks %d  [←/→ move, F1 hud, q quit]",
			g.field.Len(), g.params.Target, g.field.Cycles(), g.ticks)
		drawString(g.screen, 0, 0, hud, styleHUD)
	}

	g.screen.Show()
}

// drawString writes s starting at x, y, clipped to the screen width
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
