package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"driftdots/player"
)

// InputProvider turns host input into player input each frame
type InputProvider interface {
	// Poll applies this frame's key presses and releases to in
	Poll(in *player.Input, speed float64)
}

// defaultBindings maps keyboard keys to player actions
var defaultBindings = map[ebiten.Key]player.Action{
	ebiten.KeyArrowLeft:  player.ActionLeft,
	ebiten.KeyA:          player.ActionLeft,
	ebiten.KeyArrowRight: player.ActionRight,
	ebiten.KeyD:          player.ActionRight,
	ebiten.KeyEscape:     player.ActionQuit,
	ebiten.KeyQ:          player.ActionQuit,
}

// KeyboardInput provides input from the keyboard as key down/up edges
type KeyboardInput struct {
	bindings map[ebiten.Key]player.Action
	keys     []ebiten.Key
}

// NewKeyboardInput creates a keyboard input provider with the default bindings
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: defaultBindings,
		keys:     make([]ebiten.Key, 0, 8),
	}
}

// Action returns the action bound to key
func (k *KeyboardInput) Action(key ebiten.Key) player.Action {
	return k.bindings[key]
}

// Poll applies keys pressed and released since the last frame
func (k *KeyboardInput) Poll(in *player.Input, speed float64) {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		in.KeyDown(k.Action(key), speed)
	}

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		in.KeyUp(k.Action(key))
	}
}
