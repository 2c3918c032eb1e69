package dots

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b Vec2) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

func testCurve(t *testing.T) Curve {
	t.Helper()
	c, err := NewCurve(
		Key(0.0, Vec2{0, 0}),
		Key(0.5, Vec2{10, 20}),
		Key(1.0, Vec2{30, 0}),
	)
	if err != nil {
		t.Fatalf("NewCurve failed: %v", err)
	}
	return c
}

func TestNewCurveRejectsMalformedPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []ControlPoint
	}{
		{"none", nil},
		{"two points", []ControlPoint{Key(0, Vec2{}), Key(1, Vec2{})}},
		{"four points", []ControlPoint{Key(0, Vec2{}), Key(0.5, Vec2{}), Key(1, Vec2{}), Key(1, Vec2{})}},
		{"wrong middle knot", []ControlPoint{Key(0, Vec2{}), Key(0.4, Vec2{}), Key(1, Vec2{})}},
		{"unordered", []ControlPoint{Key(0.5, Vec2{}), Key(0, Vec2{}), Key(1, Vec2{})}},
		{"unknown interpolation", []ControlPoint{Key(0, Vec2{}), {T: 0.5, Interp: Interpolation(7)}, Key(1, Vec2{})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurve(tt.points...)
			if !errors.Is(err, ErrMalformedCurve) {
				t.Errorf("Expected ErrMalformedCurve, got %v", err)
			}
		})
	}
}

func TestSampleClampedBoundaries(t *testing.T) {
	c := testCurve(t)

	for _, q := range []float64{0, -0.1, -5, math.Inf(-1), math.NaN()} {
		if got := c.SampleClamped(q); got != c.First().Pos {
			t.Errorf("SampleClamped(%v) = %v, want first point %v", q, got, c.First().Pos)
		}
	}
	for _, q := range []float64{1, 1.1, 42, math.Inf(1)} {
		if got := c.SampleClamped(q); got != c.Last().Pos {
			t.Errorf("SampleClamped(%v) = %v, want last point %v", q, got, c.Last().Pos)
		}
	}
}

func TestSampleClampedInterpolatesWithinSegment(t *testing.T) {
	c := testCurve(t)

	tests := []struct {
		t    float64
		want Vec2
	}{
		{0.25, Vec2{5, 10}},
		{0.1, Vec2{2, 4}},
		{0.5, Vec2{10, 20}},
		{0.75, Vec2{20, 10}},
		{0.9, Vec2{26, 4}},
	}

	for _, tt := range tests {
		if got := c.SampleClamped(tt.t); !approxEqual(got, tt.want) {
			t.Errorf("SampleClamped(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSampleRejectsOutOfRange(t *testing.T) {
	c := testCurve(t)

	for _, q := range []float64{-0.0001, 1.0001, math.NaN(), math.Inf(1)} {
		if _, err := c.Sample(q); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Sample(%v): expected ErrOutOfRange, got %v", q, err)
		}
	}

	got, err := c.Sample(0)
	if err != nil {
		t.Fatalf("Sample(0) failed: %v", err)
	}
	if got != c.First().Pos {
		t.Errorf("Sample(0) = %v, want %v", got, c.First().Pos)
	}

	got, err = c.Sample(1)
	if err != nil {
		t.Fatalf("Sample(1) failed: %v", err)
	}
	if got != c.Last().Pos {
		t.Errorf("Sample(1) = %v, want %v", got, c.Last().Pos)
	}

	got, err = c.Sample(0.25)
	if err != nil {
		t.Fatalf("Sample(0.25) failed: %v", err)
	}
	if !approxEqual(got, c.SampleClamped(0.25)) {
		t.Errorf("Sample(0.25) = %v, disagrees with SampleClamped %v", got, c.SampleClamped(0.25))
	}
}

func TestEaseInOutSine(t *testing.T) {
	if got := EaseInOutSine(0); got != 0 {
		t.Errorf("ease(0) = %v, want 0", got)
	}
	if got := EaseInOutSine(1); got != 1 {
		t.Errorf("ease(1) = %v, want 1", got)
	}
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > epsilon {
		t.Errorf("ease(0.5) = %v, want 0.5", got)
	}

	prev := EaseInOutSine(0)
	for i := 1; i <= 1000; i++ {
		x := float64(i) / 1000
		cur := EaseInOutSine(x)
		if cur < prev {
			t.Fatalf("ease not monotonic: ease(%v) = %v < %v", x, cur, prev)
		}
		prev = cur
	}
}
