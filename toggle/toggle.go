// Package toggle implements an on/off component with control-props
// state resolution. A Toggle either owns its state internally
// (uncontrolled) or defers to a caller-supplied value (controlled),
// and reports misuse of the pattern through an injectable Warner.
//
// State transitions go through a pure reducer, so callers can replace
// the transition logic while keeping the resolution and notification
// machinery.
//
// A Toggle is not safe for concurrent use. All methods are meant to
// be called from a single UI loop.
package toggle

import "github.com/google/uuid"

// Config configures a Toggle. The zero value is a valid uncontrolled
// toggle that starts off.
type Config struct {
	// InitialOn seeds the state and is captured as the reset
	// snapshot. Default false.
	InitialOn bool

	// Control, if non-nil, makes the toggle controlled: the
	// pointed-to value is the authoritative On. The pointer is read
	// on every resolution, so the caller may update the value in
	// place. Default nil (uncontrolled).
	Control *bool

	// Reducer computes state transitions. Default DefaultReducer.
	Reducer Reducer

	// OnChange, if non-nil, is invoked exactly once per Toggle or
	// Reset call with the state the reducer computed from the
	// resolved value and the triggering action. Controlled callers
	// use it to learn what the state would become. Default nil.
	OnChange func(State, Action)

	// ReadOnly marks a controlled toggle without OnChange as
	// intentional, suppressing the read-only misuse warning.
	// Default false.
	ReadOnly bool

	// Warner receives misuse diagnostics. Default logs at warn
	// level via log/slog.
	Warner Warner

	// Name labels the component in diagnostics. Default is a
	// generated name with a random suffix.
	Name string
}

// Toggle is the component. Construct with New.
type Toggle struct {
	name     string
	initial  State // snapshot captured by New, never updated
	state    State // internal tracked state (uncontrolled mode)
	control  *bool
	reducer  Reducer
	onChange func(State, Action)
	readOnly bool
	warner   Warner

	// Misuse bookkeeping. wasControlled is the control mode at
	// creation and is the fixed reference for mode-switch warnings.
	wasControlled        bool
	warnedReadOnly       bool
	warnedToControlled   bool
	warnedToUncontrolled bool
}

// New creates a Toggle from cfg, captures the initial snapshot, and
// runs the first misuse evaluation, which fixes the "was controlled
// at creation" reference for the lifetime of the component.
func New(cfg Config) *Toggle {
	t := &Toggle{
		name:     cfg.Name,
		initial:  State{On: cfg.InitialOn},
		state:    State{On: cfg.InitialOn},
		control:  cfg.Control,
		reducer:  cfg.Reducer,
		onChange: cfg.OnChange,
		readOnly: cfg.ReadOnly,
		warner:   cfg.Warner,
	}
	if t.name == "" {
		t.name = "toggle-" + uuid.NewString()[:8]
	}
	if t.reducer == nil {
		t.reducer = DefaultReducer
	}
	if t.warner == nil {
		t.warner = defaultWarner
	}
	t.wasControlled = t.IsControlled()
	t.checkMisuse()
	return t
}

// Name returns the diagnostic label.
func (t *Toggle) Name() string {
	return t.name
}

// IsControlled reports whether a control value is currently supplied.
func (t *Toggle) IsControlled() bool {
	return t.control != nil
}

// On returns the resolved value: the control value when controlled,
// the internal tracked state otherwise.
func (t *Toggle) On() bool {
	if t.control != nil {
		return *t.control
	}
	return t.state.On
}

// SetControl supplies or replaces the external value, making the
// toggle controlled. Passing nil returns ownership of the state to
// the toggle. Switching modes mid-lifetime works but is reported as
// misuse; components should stay in one mode.
func (t *Toggle) SetControl(v *bool) {
	t.control = v
	t.checkMisuse()
}

// Peek returns the state the reducer would produce for a from the
// current resolved value, without applying it or notifying.
func (t *Toggle) Peek(a Action) State {
	return t.reducer(State{On: t.On()}, a)
}

// Toggle requests the flip transition.
func (t *Toggle) Toggle() {
	t.dispatch(Action{Kind: ActionToggle})
}

// Reset requests a return to the snapshot captured by New. The
// snapshot never reflects values seen after construction.
func (t *Toggle) Reset() {
	t.dispatch(Action{Kind: ActionReset, State: t.initial})
}

// dispatch runs the dual-path update. The notification state is
// computed from the resolved value before any mutation, so a
// controlled caller is told what the state would become, and an
// uncontrolled OnChange sees the same transition the internal state
// just took.
func (t *Toggle) dispatch(a Action) {
	next := t.Peek(a)
	if !t.IsControlled() {
		t.state = t.reducer(t.state, a)
	}
	if t.onChange != nil {
		t.onChange(next, a)
	}
}
