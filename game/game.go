package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"driftdots/config"
	"driftdots/dots"
	"driftdots/player"
)

// Game represents the main game state
type Game struct {
	config config.Config
	params dots.Params
	rng    dots.Rand

	clock *dots.Clock
	field *dots.Field

	level  player.Level
	player *player.Player
	input  player.Input
	keys   InputProvider

	renderer *Renderer
	profiler *Profiler
	debug    DebugState

	// viewport is the logical screen size reported by Layout
	viewport dots.Vec2

	// ticks counts fixed simulation updates since start
	ticks int

	// now is the wall clock feeding the simulation clock
	now func() time.Time
}

// NewGame creates a new game instance. The configuration is copied and
// never changes afterwards.
func NewGame(cfg config.Config, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	level := player.NewLevel(cfg.FloorY)

	g := &Game{
		config:   cfg,
		params:   cfg.Dots(),
		rng:      rng,
		clock:    dots.NewClock(opts.TPS),
		field:    dots.NewField(cfg.TargetDotCount),
		level:    level,
		player:   player.New(level),
		keys:     NewKeyboardInput(),
		renderer: NewRenderer(),
		debug:    DebugState{ShowHUD: opts.ShowHUD},
		viewport: dots.Vec2{X: float64(cfg.WindowWidth), Y: float64(cfg.WindowHeight)},
		now:      time.Now,
	}
	if opts.ProfileDir != "" {
		g.profiler = NewProfiler(opts.ProfileDir)
	}
	return g
}

// Update polls input, then runs as many fixed simulation ticks as the
// clock permits for the time since the previous frame
func (g *Game) Update() error {
	g.keys.Poll(&g.input, g.config.PlayerSpeed)
	if g.input.Quit {
		g.shutdown()
		return ebiten.Termination
	}

	g.handleDebugKeys()

	steps := g.clock.Tick(g.now())
	for i := 0; i < steps; i++ {
		g.step()
	}
	return nil
}

// step runs one fixed simulation tick
func (g *Game) step() {
	g.player.Update(g.input)
	g.field.Step(g.params, g.viewport, g.rng)
	g.ticks++
}

// shutdown flushes anything in flight before the loop exits
func (g *Game) shutdown() {
	if g.profiler != nil && g.profiler.IsProfiling() {
		g.profiler.Toggle("")
	}
}

// Draw renders the current state
func (g *Game) Draw(screen *ebiten.Image) {
	var hud []string
	if g.debug.ShowHUD {
		hud = g.hudLines()
	}
	g.renderer.Render(screen, g.config, g.level, g.field, g.player, hud)
}

// Layout keeps a 1:1 pixel mapping and records the viewport dots spawn in
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewport = dots.Vec2{X: float64(outsideWidth), Y: float64(outsideHeight)}
	}
	return int(g.viewport.X), int(g.viewport.Y)
}

// hudLines formats the debug counters
func (g *Game) hudLines() []string {
	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f  ticks %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.ticks),
		fmt.Sprintf("dots %d/%d  cycles %d", g.field.Len(), g.params.Target, g.field.Cycles()),
		fmt.Sprintf("player x %.0f %s", g.player.Pos.X, g.player.State),
		"F1 hud  F2 profile  Q quit",
	}
	if g.profiler != nil && g.profiler.IsProfiling() {
		lines = append(lines, "PROFILING")
	}
	return lines
}

// profileReason names a capture after the current load
func (g *Game) profileReason() string {
	return fmt.Sprintf("dots%d-ticks%d", g.field.Len(), g.ticks)
}
