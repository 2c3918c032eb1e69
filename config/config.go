package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"driftdots/dots"
)

const (
	// DefaultRoot is the directory configuration keys resolve against
	DefaultRoot = "."

	// DefaultKey is the configuration document inside the root
	DefaultKey = "/config.json"
)

// Config holds the game settings. It is loaded once at startup and passed by
// value afterwards; nothing mutates it while the game runs.
type Config struct {
	// PlayerSize is the player body radius in pixels
	PlayerSize float64

	// PlayerSpeed is the horizontal distance moved per tick while a direction key is held
	PlayerSpeed float64

	// PlayerRatio is the inner circle radius as a fraction of PlayerSize
	PlayerRatio float64

	// PlayerTolerance is the maximum geometric error in pixels when rasterizing the player
	PlayerTolerance float64

	// DotSize is the drawn dot radius in pixels
	DotSize float64

	// DotProgressIncrement is the progress every dot gains per tick
	DotProgressIncrement float64

	// TargetDotCount is the dot population the field grows toward
	TargetDotCount int

	// DotRadius is how far a dot's control points may sit from its anchor
	DotRadius float64

	// WindowWidth is the initial window width in pixels
	WindowWidth int

	// WindowHeight is the initial window height in pixels
	WindowHeight int

	// FloorY is the level floor line and player baseline
	FloorY float64
}

// Default returns the built-in configuration.
// Load does not fall back to it for required fields.
func Default() Config {
	return Config{
		PlayerSize:           1.0,
		PlayerSpeed:          1.0,
		PlayerRatio:          0.9,
		PlayerTolerance:      0.9,
		DotSize:              1.0,
		DotProgressIncrement: 0.01,
		TargetDotCount:       30,
		DotRadius:            50.0,
		WindowWidth:          800,
		WindowHeight:         600,
		FloorY:               500.0,
	}
}

// Dots returns the per-tick dot parameters
func (c Config) Dots() dots.Params {
	return dots.Params{
		Target:    c.TargetDotCount,
		Radius:    c.DotRadius,
		Increment: c.DotProgressIncrement,
	}
}

// document is the on-disk layout. Pointers mark required fields so a
// missing key is reported instead of silently read as zero.
type document struct {
	PlayerSize   *float64 `json:"player_size"`
	PlayerSpeed  *float64 `json:"player_speed"`
	PlayerRatio  *float64 `json:"player_ratio"`
	PlayerTol    *float64 `json:"player_tol"`
	DotSize      *float64 `json:"dot_size"`
	DotProgress  *float64 `json:"dot_progress"`
	NumDots      *int     `json:"num_dots"`
	DotRadius    *float64 `json:"dot_radius,omitempty"`
	WindowWidth  *int     `json:"window_width,omitempty"`
	WindowHeight *int     `json:"window_height,omitempty"`
	FloorY       *float64 `json:"floor_y,omitempty"`
}

// Path joins a root directory and a key the way Load resolves them
func Path(root, key string) string {
	if root == "" {
		root = DefaultRoot
	}
	if key == "" {
		key = DefaultKey
	}
	return filepath.Join(root, filepath.FromSlash(key))
}

// Load reads and validates the configuration document at key under root.
// Errors are *ConfigError, split into source unavailable and malformed content.
func Load(root, key string) (Config, error) {
	path := Path(root, key)

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Kind: SourceUnavailable, Path: path, Err: err}
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
			return Config{}, ce
		}
		return Config{}, &ConfigError{Kind: Malformed, Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a configuration document from r
func Parse(r io.Reader) (Config, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Config{}, &ConfigError{Kind: Malformed, Err: err}
	}
	if dec.More() {
		return Config{}, &ConfigError{Kind: Malformed, Err: errors.New("trailing data after configuration object")}
	}

	cfg, err := doc.config()
	if err != nil {
		return Config{}, &ConfigError{Kind: Malformed, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &ConfigError{Kind: Malformed, Err: err}
	}
	return cfg, nil
}

// config fills a Config from the document, requiring the core fields
func (d document) config() (Config, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"player_size", d.PlayerSize != nil},
		{"player_speed", d.PlayerSpeed != nil},
		{"player_ratio", d.PlayerRatio != nil},
		{"player_tol", d.PlayerTol != nil},
		{"dot_size", d.DotSize != nil},
		{"dot_progress", d.DotProgress != nil},
		{"num_dots", d.NumDots != nil},
	}
	for _, r := range required {
		if !r.present {
			return Config{}, fmt.Errorf("missing field %q", r.name)
		}
	}

	cfg := Default()
	cfg.PlayerSize = *d.PlayerSize
	cfg.PlayerSpeed = *d.PlayerSpeed
	cfg.PlayerRatio = *d.PlayerRatio
	cfg.PlayerTolerance = *d.PlayerTol
	cfg.DotSize = *d.DotSize
	cfg.DotProgressIncrement = *d.DotProgress
	cfg.TargetDotCount = *d.NumDots

	if d.DotRadius != nil {
		cfg.DotRadius = *d.DotRadius
	}
	if d.WindowWidth != nil {
		cfg.WindowWidth = *d.WindowWidth
	}
	if d.WindowHeight != nil {
		cfg.WindowHeight = *d.WindowHeight
	}
	if d.FloorY != nil {
		cfg.FloorY = *d.FloorY
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.PlayerSize <= 0:
		return fmt.Errorf("player_size must be positive, got %v", c.PlayerSize)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("player_speed must not be negative, got %v", c.PlayerSpeed)
	case c.PlayerRatio < 0 || c.PlayerRatio > 1:
		return fmt.Errorf("player_ratio must be in [0, 1], got %v", c.PlayerRatio)
	case c.PlayerTolerance <= 0:
		return fmt.Errorf("player_tol must be positive, got %v", c.PlayerTolerance)
	case c.DotSize <= 0:
		return fmt.Errorf("dot_size must be positive, got %v", c.DotSize)
	case c.DotProgressIncrement <= 0 || c.DotProgressIncrement > 1:
		return fmt.Errorf("dot_progress must be in (0, 1], got %v", c.DotProgressIncrement)
	case c.TargetDotCount < 0:
		return fmt.Errorf("num_dots must not be negative, got %d", c.TargetDotCount)
	case c.DotRadius < 0:
		return fmt.Errorf("dot_radius must not be negative, got %v", c.DotRadius)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
