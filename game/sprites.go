package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// shape identifies what a cached sprite depicts
type shape int

const (
	shapeDot shape = iota
	shapePlayer
)

// spriteKey keys the cache on shape and size so sprites are rasterized once
// instead of every frame
type spriteKey struct {
	shape shape
	size  float64
	ratio float64
	tol   float64
}

// Sprite is a rasterized image plus where its origin sits
type Sprite struct {
	Image  *ebiten.Image
	Origin float64 // offset from the sprite's top-left to the drawn center, in world pixels
	Scale  float64 // world pixels per image pixel
}

// SpriteCache holds rasterized sprites keyed by (shape, size)
type SpriteCache struct {
	sprites map[spriteKey]*Sprite

	// newImage uploads a rasterized sprite to the GPU
	newImage func(image.Image) *ebiten.Image
}

// NewSpriteCache creates an empty sprite cache
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{
		sprites:  make(map[spriteKey]*Sprite),
		newImage: ebiten.NewImageFromImage,
	}
}

// Dot returns the filled white circle sprite for the given radius
func (c *SpriteCache) Dot(radius float64) *Sprite {
	key := spriteKey{shape: shapeDot, size: radius}
	if s, ok := c.sprites[key]; ok {
		return s
	}

	img, origin := rasterizeCircle(radius, color.White)
	s := &Sprite{
		Image:  c.newImage(img),
		Origin: origin,
		Scale:  1,
	}
	c.sprites[key] = s
	return s
}

// Player returns the player sprite for the given body size, inner ratio and
// rasterization tolerance
func (c *SpriteCache) Player(size, ratio, tol float64) (*Sprite, error) {
	key := spriteKey{shape: shapePlayer, size: size, ratio: ratio, tol: tol}
	if s, ok := c.sprites[key]; ok {
		return s, nil
	}

	img, extent, err := rasterizePlayer(size, ratio, tol)
	if err != nil {
		return nil, fmt.Errorf("rasterize player sprite: %w", err)
	}
	s := &Sprite{
		Image:  c.newImage(img),
		Origin: extent / 2,
		Scale:  extent / float64(img.Bounds().Dx()),
	}
	c.sprites[key] = s
	return s, nil
}

// Len returns the number of cached sprites
func (c *SpriteCache) Len() int {
	return len(c.sprites)
}

// rasterizeCircle draws an anti-aliased filled circle centered in a square
// image with one pixel of padding. Returns the image and its center offset.
func rasterizeCircle(radius float64, clr color.Color) (*image.RGBA, float64) {
	side := int(math.Ceil(radius*2)) + 2
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	center := float64(side) / 2

	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	filler := rasterx.NewFiller(side, side, scanner)
	filler.SetColor(clr)
	rasterx.AddCircle(center, center, radius, filler)
	filler.Draw()

	return img, center
}

// playerExtent is the sprite's side length as a multiple of player size.
// It covers the body and both eyes.
const playerExtent = 2.8

// maxPlayerDensity caps image pixels per world pixel for the player sprite.
// Finer tolerances render at this density.
const maxPlayerDensity = 4.0

// playerSVG builds the player as an SVG document in world pixels: a white
// body, a black inner circle and two white eyes below the center
func playerSVG(size, ratio float64) (string, float64) {
	extent := size * playerExtent
	c := extent / 2
	eyeDX, eyeDY, eyeR := size/1.1, size/1.3, size/2.5

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]g" height="%[1]g" viewBox="0 0 %[1]g %[1]g">`, extent)
	fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="#ffffff"/>`, c, c, size)
	fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="#000000"/>`, c, c, size*ratio)
	fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="#ffffff"/>`, c+eyeDX, c+eyeDY, eyeR)
	fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="#ffffff"/>`, c-eyeDX, c+eyeDY, eyeR)
	b.WriteString(`</svg>`)
	return b.String(), extent
}

// rasterizePlayer renders the player SVG. Tolerance is the largest error in
// world pixels, so the image is rendered at 1/tol pixels per world pixel,
// capped at maxPlayerDensity.
func rasterizePlayer(size, ratio, tol float64) (*image.RGBA, float64, error) {
	doc, extent := playerSVG(size, ratio)

	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, 0, err
	}

	side := int(math.Ceil(extent * math.Min(1/tol, maxPlayerDensity)))
	if side < 1 {
		side = 1
	}
	icon.SetTarget(0, 0, float64(side), float64(side))

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	raster := rasterx.NewDasher(side, side, scanner)
	icon.Draw(raster, 1.0)

	return img, extent, nil
}
