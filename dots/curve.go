package dots

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformedCurve is returned when control points do not form a valid curve
	ErrMalformedCurve = errors.New("dots: malformed curve")

	// ErrOutOfRange is returned by Curve.Sample for a parameter outside [0, 1]
	ErrOutOfRange = errors.New("dots: sample parameter out of range")
)

// Interpolation selects how a curve moves from one control point to the next
type Interpolation int

const (
	InterpolationLinear Interpolation = iota
)

// String returns the interpolation name
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// curveKnots are the parameter values every curve is keyed on
var curveKnots = [3]float64{0.0, 0.5, 1.0}

// ControlPoint is a keyed position on a curve
type ControlPoint struct {
	T      float64
	Pos    Vec2
	Interp Interpolation
}

// Key builds a linear control point at parameter t
func Key(t float64, pos Vec2) ControlPoint {
	return ControlPoint{T: t, Pos: pos, Interp: InterpolationLinear}
}

// Curve is a 3-point piecewise-linear path over t in [0, 1].
// Curves are values: a dot swaps in a new one instead of editing the old one.
type Curve struct {
	points [3]ControlPoint
}

// NewCurve validates the control points and builds a curve.
// Exactly three linear points keyed at 0, 0.5 and 1 are accepted.
func NewCurve(points ...ControlPoint) (Curve, error) {
	if len(points) != len(curveKnots) {
		return Curve{}, fmt.Errorf("%w: want %d control points, got %d", ErrMalformedCurve, len(curveKnots), len(points))
	}

	var c Curve
	for i, p := range points {
		if p.T != curveKnots[i] {
			return Curve{}, fmt.Errorf("%w: point %d keyed at t=%v, want %v", ErrMalformedCurve, i, p.T, curveKnots[i])
		}
		if p.Interp != InterpolationLinear {
			return Curve{}, fmt.Errorf("%w: point %d uses unsupported %v interpolation", ErrMalformedCurve, i, p.Interp)
		}
		c.points[i] = p
	}
	return c, nil
}

// mustCurve builds a curve the dot state machine guarantees is valid
func mustCurve(points ...ControlPoint) Curve {
	c, err := NewCurve(points...)
	if err != nil {
		panic(err)
	}
	return c
}

// Points returns a copy of the control points
func (c Curve) Points() [3]ControlPoint {
	return c.points
}

// First returns the control point at t=0
func (c Curve) First() ControlPoint {
	return c.points[0]
}

// Last returns the control point at t=1
func (c Curve) Last() ControlPoint {
	return c.points[len(c.points)-1]
}

// SampleClamped evaluates the curve, clamping t to [0, 1]. It never fails.
func (c Curve) SampleClamped(t float64) Vec2 {
	// NaN fails both comparisons below, treat it as the start
	if t <= 0 || math.IsNaN(t) {
		return c.points[0].Pos
	}
	if t >= 1 {
		return c.Last().Pos
	}
	return c.interpolate(t)
}

// Sample evaluates the curve at t, rejecting parameters outside [0, 1]
func (c Curve) Sample(t float64) (Vec2, error) {
	if !(t >= 0 && t <= 1) {
		return Vec2{}, fmt.Errorf("%w: t=%v", ErrOutOfRange, t)
	}
	if t == 1 {
		return c.Last().Pos, nil
	}
	return c.interpolate(t), nil
}

// interpolate finds the segment holding t and lerps across it. t must be in [0, 1).
func (c Curve) interpolate(t float64) Vec2 {
	i := 0
	for i < len(c.points)-2 && t >= c.points[i+1].T {
		i++
	}
	from, to := c.points[i], c.points[i+1]
	local := (t - from.T) / (to.T - from.T)
	return from.Pos.Lerp(to.Pos, local)
}
