package player

// Action is a host-independent key meaning
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Input is the control state hosts feed into the player each tick
type Input struct {
	XAxis float64
	Quit  bool
}

// KeyDown applies a key press. A direction sets the axis to the given speed.
func (in *Input) KeyDown(a Action, speed float64) {
	switch a {
	case ActionLeft:
		in.XAxis = -speed
	case ActionRight:
		in.XAxis = speed
	case ActionQuit:
		in.Quit = true
	}
}

// KeyUp applies a key release. Releasing either direction stops the player.
func (in *Input) KeyUp(a Action) {
	switch a {
	case ActionLeft, ActionRight:
		in.XAxis = 0
	}
}
