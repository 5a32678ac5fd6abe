package toggle

import "fmt"

// State is the model managed by a Toggle. It is the single source of
// truth in uncontrolled mode.
type State struct {
	On bool
}

// ActionKind tags a requested state transition.
type ActionKind int

const (
	// ActionToggle requests that On flip.
	ActionToggle ActionKind = iota
	// ActionReset requests a return to the initial snapshot.
	ActionReset
)

// String returns the action name used in diagnostics.
func (k ActionKind) String() string {
	switch k {
	case ActionToggle:
		return "toggle"
	case ActionReset:
		return "reset"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a request for a state transition. For ActionReset, State
// carries the snapshot to restore.
type Action struct {
	Kind  ActionKind
	State State
}

// Reducer maps the current state and an action to the next state.
// Reducers must be pure functions - never mutate, no side effects.
type Reducer func(State, Action) State

// DefaultReducer handles the standard transitions: ActionToggle flips
// On, ActionReset restores the snapshot carried by the action. Any
// other kind is a caller bug and panics rather than silently
// returning the previous state.
func DefaultReducer(s State, a Action) State {
	switch a.Kind {
	case ActionToggle:
		return State{On: !s.On}
	case ActionReset:
		return a.State
	default:
		panic(fmt.Sprintf("toggle: unhandled action kind %v", a.Kind))
	}
}
