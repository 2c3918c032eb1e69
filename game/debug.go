package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DebugState holds debug toggles. Each Game owns its own copy.
type DebugState struct {
	ShowHUD bool // Show tick, dot and frame rate counters
}

// debug keys
const (
	keyToggleHUD     = ebiten.KeyF1
	keyToggleProfile = ebiten.KeyF2
)

// handleDebugKeys processes the debug toggles for this frame
func (g *Game) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(keyToggleHUD) {
		g.debug.ShowHUD = !g.debug.ShowHUD
	}
	if inpututil.IsKeyJustPressed(keyToggleProfile) && g.profiler != nil {
		g.profiler.Toggle(g.profileReason())
	}
}
