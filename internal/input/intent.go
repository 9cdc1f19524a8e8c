// Package input translates raw key events into a closed set of game
// actions, and tracks which are held versus just pressed each tick.
package input

// Action is a normalized, input-source-independent player command.
type Action uint8

const (
	ThrustForward Action = iota
	ThrustBackward
	TurnLeft
	TurnRight
	Fire
	DropBomb
	TogglePause
	Restart
	Quit

	numActions
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ThrustForward:
		return "thrust-forward"
	case ThrustBackward:
		return "thrust-backward"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case Fire:
		return "fire"
	case DropBomb:
		return "drop-bomb"
	case TogglePause:
		return "toggle-pause"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// continuous actions repeat while their key is held; everything else is
// discrete and must trigger once per press.
var continuousMask = bit(ThrustForward) | bit(ThrustBackward) |
	bit(TurnLeft) | bit(TurnRight) | bit(Fire)

func bit(a Action) uint16 {
	return 1 << a
}

// Continuous reports whether the action repeats while held.
func (a Action) Continuous() bool {
	return bit(a)&continuousMask != 0
}

// Intent is one tick's worth of player commands. The zero value means no
// input.
type Intent struct {
	held    uint16
	pressed uint16
}

// Held reports whether the action's key is currently down. Use this for
// continuous actions like thrust and turn.
func (i Intent) Held(a Action) bool {
	return i.held&bit(a) != 0
}

// Pressed reports whether the action was triggered this tick. Use this for
// discrete actions like pause and restart.
func (i Intent) Pressed(a Action) bool {
	return i.pressed&bit(a) != 0
}

// Empty reports whether no action is held or pressed.
func (i Intent) Empty() bool {
	return i.held == 0 && i.pressed == 0
}

// WithHeld returns a copy of the intent with the given actions held.
// Mostly useful for tests and scripted input.
func (i Intent) WithHeld(actions ...Action) Intent {
	for _, a := range actions {
		i.held |= bit(a)
	}
	return i
}

// WithPressed returns a copy of the intent with the given actions
// triggered this tick.
func (i Intent) WithPressed(actions ...Action) Intent {
	for _, a := range actions {
		i.pressed |= bit(a)
	}
	return i
}
