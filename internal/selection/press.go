package selection

import "time"

const (
	// DefaultHold is how long a press must last to count as a long interaction.
	DefaultHold = 1000 * time.Millisecond
	// DefaultTolerance is how far the pointer may drift, per axis, while holding.
	DefaultTolerance = 5
)

// PressState is the phase of one pointer interaction.
type PressState int

const (
	Idle PressState = iota
	Pressing
	Fired
)

func (s PressState) String() string {
	switch s {
	case Pressing:
		return "pressing"
	case Fired:
		return "fired"
	default:
		return "idle"
	}
}

// Press tells a long press apart from a click. It owns no timer: Down returns a
// generation the caller hands back to Timeout once Hold has elapsed.
type Press struct {
	Hold      time.Duration
	Tolerance int

	state PressState
	id    string
	x, y  int
	gen   uint64
}

// NewPress creates a machine with explicit thresholds; zero values use the defaults.
func NewPress(hold time.Duration, tolerance int) *Press {
	if hold <= 0 {
		hold = DefaultHold
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Press{Hold: hold, Tolerance: tolerance}
}

// State returns the current phase.
func (p *Press) State() PressState {
	return p.state
}

// Target returns the item the current interaction started on.
func (p *Press) Target() string {
	return p.id
}

// Down starts a press on id at (x, y) and returns the timer generation.
func (p *Press) Down(id string, x, y int) uint64 {
	p.gen++
	p.state = Pressing
	p.id = id
	p.x, p.y = x, y
	return p.gen
}

// Move cancels a pending press once the pointer drifts past the tolerance.
func (p *Press) Move(x, y int) {
	if p.state != Pressing {
		return
	}
	if abs(x-p.x) > p.Tolerance || abs(y-p.y) > p.Tolerance {
		p.cancel()
	}
}

// Up ends the press. A pending long press is cancelled; a fired one stays
// fired until the click it produced has been swallowed.
func (p *Press) Up() {
	if p.state == Pressing {
		p.state = Idle
	}
}

// Timeout fires the long press if gen still names the pending press.
func (p *Press) Timeout(gen uint64) (string, bool) {
	if p.state != Pressing || gen != p.gen {
		return "", false
	}
	p.state = Fired
	return p.id, true
}

// Click reports whether a click should be acted on. The click that follows a
// fired long press is swallowed and the machine returns to idle.
func (p *Press) Click() bool {
	if p.state == Fired {
		p.state = Idle
		p.id = ""
		return false
	}
	return true
}

// ContextMenu reports whether the context action must be suppressed.
func (p *Press) ContextMenu() bool {
	return p.state != Idle
}

func (p *Press) cancel() {
	p.state = Idle
	p.id = ""
	p.gen++
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
