package game

import (
	"image/color"

	"driftdots/dots"
)

// Options holds host settings that are not part of the config document
type Options struct {
	// Rand is the random source for dot spawning and curve rotation
	Rand dots.Rand

	// TPS is the fixed simulation rate
	TPS int

	// ProfileDir is where F2 writes CPU profiles. Empty disables profiling.
	ProfileDir string

	// ShowHUD starts the game with the debug HUD visible
	ShowHUD bool
}

// DefaultOptions returns the options used by the desktop binary
func DefaultOptions(rng dots.Rand) Options {
	return Options{
		Rand:       rng,
		TPS:        dots.DefaultTPS,
		ProfileDir: "profiles",
	}
}

// Colors
var (
	colorBackground = color.NRGBA{R: 26, G: 51, B: 77, A: 255}
	colorFloor      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorHUD        = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
)

// floorWidth is the stroke width of the level floor line
const floorWidth = 2.0
