package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"driftdots/config"
	"driftdots/dots"
	"driftdots/player"
)

// hudLineHeight is the pixel spacing between HUD lines
const hudLineHeight = 14

// Renderer draws the level, the dot field, the player and the HUD
type Renderer struct {
	sprites   *SpriteCache
	face      text.Face
	positions []dots.Vec2 // reused every frame
	op        ebiten.DrawImageOptions

	// playerErr remembers a failed player sprite so it is logged once
	playerErr error
}

// NewRenderer creates a renderer with an empty sprite cache
func NewRenderer() *Renderer {
	return &Renderer{
		sprites: NewSpriteCache(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, cfg config.Config, level player.Level, field *dots.Field, p *player.Player, hud []string) {
	screen.Fill(colorBackground)

	r.drawLevel(screen, level)
	r.drawDots(screen, cfg, field)
	r.drawPlayer(screen, cfg, p)

	if len(hud) > 0 {
		r.drawHUD(screen, hud)
	}
}

// drawLevel draws the floor line across the full screen width
func (r *Renderer) drawLevel(screen *ebiten.Image, level player.Level) {
	width := float32(screen.Bounds().Dx())
	y := float32(level.Floor)
	vector.StrokeLine(screen, 0, y, width, y, floorWidth, colorFloor, false)
}

// drawDots draws every dot with the cached circle sprite
func (r *Renderer) drawDots(screen *ebiten.Image, cfg config.Config, field *dots.Field) {
	sprite := r.sprites.Dot(cfg.DotSize)

	r.positions = field.Positions(r.positions[:0])
	for _, pos := range r.positions {
		r.drawSprite(screen, sprite, pos)
	}
}

// drawPlayer draws the player sprite centered on its position
func (r *Renderer) drawPlayer(screen *ebiten.Image, cfg config.Config, p *player.Player) {
	sprite, err := r.sprites.Player(cfg.PlayerSize, cfg.PlayerRatio, cfg.PlayerTolerance)
	if err != nil {
		if r.playerErr == nil {
			log.Printf("renderer: %v", err)
			r.playerErr = err
		}
		return
	}
	r.drawSprite(screen, sprite, p.Pos)
}

// drawSprite draws a sprite with its origin on pos
func (r *Renderer) drawSprite(screen *ebiten.Image, s *Sprite, pos dots.Vec2) {
	r.op.GeoM.Reset()
	r.op.GeoM.Scale(s.Scale, s.Scale)
	r.op.GeoM.Translate(pos.X-s.Origin, pos.Y-s.Origin)
	screen.DrawImage(s.Image, &r.op)
}

// drawHUD prints the debug lines in the top-left corner
func (r *Renderer) drawHUD(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(6, float64(6+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, r.face, op)
	}
}
