// Package input supplies the button edge-state machine the original
// firmware's peripheral layer used, carried here
// as a desktop/terminal stand-in for the SPI/GPIO driver it replaces.
package input

// Button enumerates the physical controls the original handheld wired
// up. Only a subset is meaningful on a keyboard/terminal harness, but
// the full set is kept so the edge-state machine has somewhere to put
// every input the demo shell maps.
type Button int

const (
	Up Button = iota
	Left
	Down
	Right
	A
	B
	C
	D
	Select
	Start
	L
	R
	buttonCount
)

// State is a single button's debounced state across frames.
type State int

const (
	Idle State = iota
	Released
	Pressed
	Held
)

// IsDown reports whether the button is currently considered held down
// (Pressed this frame or continuing to be Held).
func (s State) IsDown() bool {
	return s == Pressed || s == Held
}

// IsUp reports the complement of IsDown.
func (s State) IsUp() bool {
	return !s.IsDown()
}

// Controller tracks per-button edge state across frames from a raw
// "is this physically down right now" sample.
type Controller struct {
	states [buttonCount]State
}

// Update advances every button's state machine given this frame's raw
// down/up sample. The transition table is: Idle/Released + down ->
// Pressed; Pressed/Held + down -> Held; Pressed/Held + up -> Released;
// Idle/Released + up -> Idle.
func (c *Controller) Update(down [buttonCount]bool) {
	for i := range c.states {
		c.states[i] = next(c.states[i], down[i])
	}
}

func next(s State, down bool) State {
	switch s {
	case Idle, Released:
		if down {
			return Pressed
		}
		return Idle
	case Pressed, Held:
		if down {
			return Held
		}
		return Released
	default:
		return Idle
	}
}

// Status returns the current debounced state of btn.
func (c *Controller) Status(btn Button) State {
	return c.states[btn]
}
