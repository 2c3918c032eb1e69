package dots

// Params holds the per-tick dot settings taken from configuration
type Params struct {
	// Target is the population the field grows toward
	Target int

	// Radius is the control point offset radius around each anchor
	Radius float64

	// Increment is the progress added to every dot per tick
	Increment float64
}

// Field owns the live dots and drives their per-tick update
type Field struct {
	dots []*Dot
}

// NewField creates an empty field with room for capacity dots
func NewField(capacity int) *Field {
	if capacity < 0 {
		capacity = 0
	}
	return &Field{
		dots: make([]*Dot, 0, capacity),
	}
}

// TopUp spawns dots inside the viewport until the field holds target dots.
// The field never shrinks when target is below the current population.
// Returns the number of dots spawned.
func (f *Field) TopUp(target int, viewport Vec2, radius float64, rng Rand) int {
	spawned := 0
	for len(f.dots) < target {
		anchor := Vec2{
			X: rng.Float64() * viewport.X,
			Y: rng.Float64() * viewport.Y,
		}
		f.dots = append(f.dots, SpawnDot(anchor, radius, rng))
		spawned++
	}
	return spawned
}

// AdvanceAll advances every dot in insertion order
func (f *Field) AdvanceAll(increment float64, rng Rand) {
	for _, d := range f.dots {
		d.Advance(increment, rng)
	}
}

// Step runs one fixed simulation tick: top up, then advance
func (f *Field) Step(p Params, viewport Vec2, rng Rand) {
	f.TopUp(p.Target, viewport, p.Radius, rng)
	f.AdvanceAll(p.Increment, rng)
}

// Len returns the live dot count
func (f *Field) Len() int {
	return len(f.dots)
}

// Dots returns the live dots. The slice must not be modified.
func (f *Field) Dots() []*Dot {
	return f.dots
}

// Positions appends every dot's position to dst and returns it
func (f *Field) Positions(dst []Vec2) []Vec2 {
	for _, d := range f.dots {
		dst = append(dst, d.pos)
	}
	return dst
}

// Cycles returns the total number of curve rotations across all dots
func (f *Field) Cycles() int {
	total := 0
	for _, d := range f.dots {
		total += d.cycles
	}
	return total
}
