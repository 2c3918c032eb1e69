package dots

import "math"

// Rand is the random source a dot draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Dot is a decorative particle drifting along a curve around its anchor
type Dot struct {
	anchor   Vec2    // spawn point, fixed for the dot's life
	radius   float64 // max offset of control points from the anchor, per axis
	curve    Curve
	progress float64 // linear progress along curve, in [0, 1]
	pos      Vec2    // last sampled position
	cycles   int     // completed curve rotations
}

// SpawnDot creates a dot with a random curve around anchor and a random
// starting phase, so freshly spawned dots do not pulse in sync.
func SpawnDot(anchor Vec2, radius float64, rng Rand) *Dot {
	d := &Dot{
		anchor: anchor,
		radius: radius,
	}
	d.curve = mustCurve(
		Key(curveKnots[0], d.randomPoint(rng)),
		Key(curveKnots[1], d.randomPoint(rng)),
		Key(curveKnots[2], d.randomPoint(rng)),
	)
	d.progress = rng.Float64()
	d.pos = d.curve.SampleClamped(EaseInOutSine(d.progress))
	return d
}

// randomPoint offsets the anchor by U(0,1)*radius on each axis.
// The offset only ever grows right and down of the anchor.
func (d *Dot) randomPoint(rng Rand) Vec2 {
	x := rng.Float64()
	y := rng.Float64()
	return d.anchor.Add(Vec2{X: x, Y: y}.Scale(d.radius))
}

// Advance moves the dot one tick along its curve. When the curve is used up
// it is replaced by a new one that starts where the old one ended.
func (d *Dot) Advance(increment float64, rng Rand) {
	d.progress = math.Min(d.progress+increment, 1.0)
	d.pos = d.curve.SampleClamped(EaseInOutSine(d.progress))

	if d.progress >= 1.0 {
		d.rotate(rng)
	}
}

// rotate swaps in the next curve, keyed from the outgoing curve's end point
func (d *Dot) rotate(rng Rand) {
	first := d.curve.Last()
	first.T = curveKnots[0]

	d.curve = mustCurve(
		first,
		Key(curveKnots[1], d.randomPoint(rng)),
		Key(curveKnots[2], d.randomPoint(rng)),
	)
	d.progress = 0.0

	pos, err := d.curve.Sample(d.progress)
	if err != nil {
		panic(err)
	}
	d.pos = pos
	d.cycles++
}

// Position returns the dot's current resolved position
func (d *Dot) Position() Vec2 {
	return d.pos
}

// Progress returns linear progress along the current curve
func (d *Dot) Progress() float64 {
	return d.progress
}

// Curve returns the curve the dot is currently travelling
func (d *Dot) Curve() Curve {
	return d.curve
}

func (d *Dot) Anchor() Vec2 {
	return d.anchor
}

func (d *Dot) Radius() float64 {
	return d.radius
}

// Cycles returns how many times the dot has rotated to a new curve
func (d *Dot) Cycles() int {
	return d.cycles
}
