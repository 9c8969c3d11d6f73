package midway

import "github.com/vovakirdan/midway/internal/config"

// State is a game-flow state.
type State uint8

const (
	StateStart State = iota
	StateInstructions
	StateRunning
	StateGameOver
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInstructions:
		return "instructions"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// Flow is the four-state page machine gating the simulation.
type Flow struct {
	state State
	mode  string
	delay float64 // Seconds before GAME_OVER accepts input

	restartDelay float64
}

// NewFlow creates a flow in START with the paging mode and restart delay
// from cfg.
func NewFlow(cfg config.FlowConfig) *Flow {
	return &Flow{
		state:        StateStart,
		mode:         cfg.Mode,
		restartDelay: cfg.RestartDelay,
	}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Waiting reports whether GAME_OVER is still ignoring input.
func (f *Flow) Waiting() bool {
	return f.state == StateGameOver && f.delay > 0
}

// Primary handles ConfirmPrimary. It returns true when a fresh run must be
// set up.
func (f *Flow) Primary() (setup bool) {
	switch f.state {
	case StateStart, StateInstructions:
		f.state = StateRunning
		return true
	case StateGameOver:
		if f.delay > 0 {
			return false
		}
		f.state = StateRunning
		return true
	}
	return false
}

// Secondary handles ConfirmSecondary. It returns true when a fresh run must
// be set up.
func (f *Flow) Secondary() (setup bool) {
	switch f.state {
	case StateStart:
		f.state = StateInstructions
	case StateInstructions:
		if f.mode == config.FlowAdvance {
			f.state = StateRunning
			return true
		}
		f.state = StateStart
	case StateGameOver:
		if f.delay <= 0 {
			f.state = StateInstructions
		}
	}
	return false
}

// GameOver moves RUNNING to GAME_OVER and arms the restart delay.
func (f *Flow) GameOver() {
	if f.state != StateRunning {
		return
	}
	f.state = StateGameOver
	f.delay = f.restartDelay
}

// Tick counts the restart delay down by dt seconds.
func (f *Flow) Tick(dt float64) {
	if f.delay > 0 {
		f.delay -= dt
		if f.delay < 0 {
			f.delay = 0
		}
	}
}

// Remaining returns the seconds left before restart input is accepted.
func (f *Flow) Remaining() float64 { return f.delay }
