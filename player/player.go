package player

import "driftdots/dots"

// StartX is where the player first appears on the floor
const StartX = 200.0

// Direction is the way the player is facing
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// State is the player's movement state
type State int

const (
	StateIdle State = iota
	StateWalking
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	default:
		return "unknown"
	}
}

// Level is the static scenery the player walks on
type Level struct {
	Floor float64
}

// NewLevel creates a level with its floor line at floorY
func NewLevel(floorY float64) Level {
	return Level{Floor: floorY}
}

// Player is the character walking along the floor line
type Player struct {
	Pos    dots.Vec2
	State  State
	Facing Direction
}

// New places a player on the level floor
func New(level Level) *Player {
	return &Player{
		Pos:   dots.Vec2{X: StartX, Y: level.Floor},
		State: StateIdle,
	}
}

// Update applies one tick of input. Movement is a plain translation along
// the horizontal axis; there is no acceleration or collision.
func (p *Player) Update(in Input) {
	p.Pos.X += in.XAxis

	switch {
	case in.XAxis < 0:
		p.State = StateWalking
		p.Facing = DirectionLeft
	case in.XAxis > 0:
		p.State = StateWalking
		p.Facing = DirectionRight
	default:
		p.State = StateIdle
	}
}
