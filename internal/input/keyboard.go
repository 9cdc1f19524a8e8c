package input

import (
	"bufio"
	"time"
)

// holdWindow is how long a key counts as "held" after its last byte.
// Terminal input has no key-up events, so a key is down while its
// auto-repeat keeps arriving.
const holdWindow = 150 * time.Millisecond

// retriggerDelay debounces discrete actions: repeat bytes inside this
// window refresh the timer instead of triggering again, so holding the
// pause key does not toggle every tick.
const retriggerDelay = 250 * time.Millisecond

// defaultBindings maps input bytes to actions (WASD plus common
// alternates; arrows are handled as CSI sequences in Poll).
var defaultBindings = map[byte]Action{
	'w': ThrustForward, 'W': ThrustForward,
	's': ThrustBackward, 'S': ThrustBackward,
	'a': TurnLeft, 'A': TurnLeft,
	'd': TurnRight, 'D': TurnRight,
	' ': Fire,
	'x': DropBomb, 'X': DropBomb,
	'b': DropBomb, 'B': DropBomb,
	'p': TogglePause, 'P': TogglePause,
	'r': Restart, 'R': Restart,
	'q': Quit, 'Q': Quit,
	0x03: Quit, // Ctrl-C
}

// Keyboard reads raw terminal bytes and produces per-tick Intents.
// Key state is tracked by last-seen timestamps so that simultaneous keys
// (thrust + turn + fire) register together even though the terminal
// delivers bytes one at a time.
type Keyboard struct {
	ch chan byte

	lastSeen    [numActions]time.Time
	lastTrigger [numActions]time.Time
	prevHeld    uint16
	pending     uint16 // discrete triggers accumulated since last Poll
}

// NewKeyboard creates a Keyboard and spawns a goroutine reading from r.
// The goroutine exits when the reader fails (e.g. the session closed).
func NewKeyboard(r *bufio.Reader) *Keyboard {
	k := &Keyboard{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(k.ch)
				return
			}
			k.ch <- b
		}
	}()
	return k
}

// newKeyboardForTest creates a Keyboard without a reader goroutine.
func newKeyboardForTest() *Keyboard {
	return &Keyboard{ch: make(chan byte, 128)}
}

// Poll drains all available bytes (non-blocking) and returns the intent
// for this tick: which actions are held, and which discrete actions were
// freshly triggered.
func (k *Keyboard) Poll(now time.Time) Intent {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-k.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	k.handleBytes(buf, now)

	var held uint16
	for a := Action(0); a < numActions; a++ {
		if now.Sub(k.lastSeen[a]) < holdWindow {
			held |= bit(a)
		}
	}

	// Continuous actions also report a press on their rising edge.
	pressed := k.pending | (held & ^k.prevHeld & continuousMask)
	k.pending = 0
	k.prevHeld = held

	return Intent{held: held, pressed: pressed}
}

// handleBytes parses raw bytes, including CSI arrow sequences, and updates
// key state.
func (k *Keyboard) handleBytes(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				k.applyAction(ThrustForward, now)
			case 'B':
				k.applyAction(ThrustBackward, now)
			case 'C':
				k.applyAction(TurnRight, now)
			case 'D':
				k.applyAction(TurnLeft, now)
			}
			i += 2
			continue
		}
		if b == 0x1b {
			// Lone escape quits.
			k.applyAction(Quit, now)
			continue
		}

		if a, ok := defaultBindings[b]; ok {
			k.applyAction(a, now)
		}
	}
}

func (k *Keyboard) applyAction(a Action, now time.Time) {
	k.lastSeen[a] = now

	if !a.Continuous() {
		if now.Sub(k.lastTrigger[a]) >= retriggerDelay {
			k.pending |= bit(a)
		}
		k.lastTrigger[a] = now
	}
}

// Reset clears all key state, e.g. when switching screens, so stale holds
// do not leak into the next phase.
func (k *Keyboard) Reset() {
	k.lastSeen = [numActions]time.Time{}
	k.lastTrigger = [numActions]time.Time{}
	k.prevHeld = 0
	k.pending = 0
}
