package dots

import (
	"math/rand"
	"testing"
)

func TestTopUpConvergesInOnePass(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewField(0)
	viewport := Vec2{800, 600}

	spawned := f.TopUp(25, viewport, 50, rng)

	if spawned != 25 || f.Len() != 25 {
		t.Fatalf("Expected 25 dots after one pass, spawned %d, have %d", spawned, f.Len())
	}
	for i, d := range f.Dots() {
		if len(d.Curve().Points()) != 3 {
			t.Errorf("dot %d has %d control points", i, len(d.Curve().Points()))
		}
		a := d.Anchor()
		if a.X < 0 || a.X >= viewport.X || a.Y < 0 || a.Y >= viewport.Y {
			t.Errorf("dot %d anchor %v outside viewport", i, a)
		}
		if d.Radius() != 50 {
			t.Errorf("dot %d radius = %v, want 50", i, d.Radius())
		}
	}

	if spawned := f.TopUp(25, viewport, 50, rng); spawned != 0 {
		t.Errorf("Expected no spawns at target, got %d", spawned)
	}
}

func TestTopUpNeverShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	f := NewField(10)
	f.TopUp(10, Vec2{100, 100}, 5, rng)

	f.TopUp(4, Vec2{100, 100}, 5, rng)
	if f.Len() != 10 {
		t.Errorf("Expected population to stay at 10 after lower target, got %d", f.Len())
	}

	f.TopUp(12, Vec2{100, 100}, 5, rng)
	if f.Len() != 12 {
		t.Errorf("Expected population to grow to 12, got %d", f.Len())
	}
}

func TestTopUpAnchorDraws(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0.25, 0, 0, 0, 0, 0, 0, 0}}
	f := NewField(1)

	f.TopUp(1, Vec2{800, 600}, 50, rng)

	if got := f.Dots()[0].Anchor(); got != (Vec2{400, 150}) {
		t.Errorf("anchor = %v, want {400 150}", got)
	}
}

// Scenario: 3 dots, 800x600, increment 0.5, two ticks
func TestFieldTwoTickScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	f := NewField(3)
	params := Params{Target: 3, Radius: 50, Increment: 0.5}
	viewport := Vec2{800, 600}

	f.TopUp(params.Target, viewport, params.Radius, rng)
	if f.Len() != 3 {
		t.Fatalf("Expected 3 dots after top-up, got %d", f.Len())
	}

	initial := make([]float64, f.Len())
	for i, d := range f.Dots() {
		initial[i] = d.Progress()
	}

	f.Step(params, viewport, rng)
	f.Step(params, viewport, rng)

	if f.Len() != 3 {
		t.Fatalf("Expected population to stay at 3, got %d", f.Len())
	}

	for i, d := range f.Dots() {
		if d.Cycles() < 1 {
			t.Errorf("dot %d (initial progress %v) never rotated", i, initial[i])
		}

		// Rotating on the first tick leaves half a cycle for the second
		want := 0.0
		if initial[i]+0.5 >= 1.0 {
			want = 0.5
		}
		if d.Progress() != want {
			t.Errorf("dot %d (initial progress %v): progress = %v, want %v", i, initial[i], d.Progress(), want)
		}
	}
}

func TestFieldDeterministicWithSeed(t *testing.T) {
	run := func() []Vec2 {
		rng := rand.New(rand.NewSource(1234))
		f := NewField(8)
		p := Params{Target: 8, Radius: 40, Increment: 0.03}
		for i := 0; i < 120; i++ {
			f.Step(p, Vec2{640, 480}, rng)
		}
		return f.Positions(nil)
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("dot %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFieldCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	f := NewField(4)
	p := Params{Target: 4, Radius: 10, Increment: 1}

	f.Step(p, Vec2{10, 10}, rng)

	if f.Cycles() != 4 {
		t.Errorf("Expected every dot to rotate once with increment 1, got %d cycles", f.Cycles())
	}
}
