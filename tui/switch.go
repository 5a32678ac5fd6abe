// Package tui renders toggles as focusable switch controls for
// bubbletea programs.
//
// A Switch wraps a toggle.Toggle and binds its activation keys
// through the toggle's prop bags. Switches are designed for
// single-threaded use within the bubbletea event loop.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elizafairlady/go-toggle/toggle"
)

// ToggleMsg reports that a switch fired an action. Parents of
// controlled switches use it to decide whether to update the control
// value; Next is the state the reducer computed for the action.
type ToggleMsg struct {
	Name   string
	Next   toggle.State
	Action toggle.Action
}

// SwitchConfig configures a Switch. Start from DefaultSwitchConfig
// and override fields.
type SwitchConfig struct {
	// Label is shown next to the control. Default empty.
	Label string

	// InitialOn seeds the underlying toggle. Default false.
	InitialOn bool

	// Control, if non-nil, drives the switch as a controlled
	// component. The pointer is read on every render. Default nil.
	Control *bool

	// Reducer, OnChange, ReadOnly, Warner, and Name are forwarded
	// to the underlying toggle.
	Reducer  toggle.Reducer
	OnChange func(toggle.State, toggle.Action)
	ReadOnly bool
	Warner   toggle.Warner
	Name     string

	// KeyMap holds the activation bindings. Default DefaultKeyMap.
	KeyMap KeyMap

	// Styles controls the appearance. Default DefaultStyles.
	Styles Styles
}

// DefaultSwitchConfig returns a config with the standard key map and
// styles.
func DefaultSwitchConfig() SwitchConfig {
	return SwitchConfig{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
	}
}

// Switch is a focusable on/off control for bubbletea programs.
type Switch struct {
	keymap  KeyMap
	styles  Styles
	label   string
	initial toggle.State
	tg      *toggle.Toggle
	focused bool
}

// NewSwitch creates a Switch from cfg.
func NewSwitch(cfg SwitchConfig) Switch {
	if len(cfg.KeyMap.Toggle.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Styles.OnMark == "" && cfg.Styles.OffMark == "" {
		cfg.Styles = DefaultStyles()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Label
	}
	tg := toggle.New(toggle.Config{
		InitialOn: cfg.InitialOn,
		Control:   cfg.Control,
		Reducer:   cfg.Reducer,
		OnChange:  cfg.OnChange,
		ReadOnly:  cfg.ReadOnly,
		Warner:    cfg.Warner,
		Name:      name,
	})
	return Switch{
		keymap:  cfg.KeyMap,
		styles:  cfg.Styles,
		label:   cfg.Label,
		initial: toggle.State{On: cfg.InitialOn},
		tg:      tg,
	}
}

// Init is the bubbletea init function. Switches have no startup
// work.
func (s Switch) Init() tea.Cmd {
	return nil
}

// Update is the bubbletea update loop. Key events are handled only
// while the switch has focus. It returns the concrete type, so
// parents embed switches without type assertions.
func (s Switch) Update(msg tea.Msg) (Switch, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(keyMsg, s.keymap.Toggle):
		return s, s.fire(toggle.Action{Kind: toggle.ActionToggle}, s.tg.TogglerProps())
	case key.Matches(keyMsg, s.keymap.Reset):
		return s, s.fire(toggle.Action{Kind: toggle.ActionReset, State: s.initial}, s.tg.ResetterProps())
	}
	return s, nil
}

// fire computes the would-be state, triggers the prop bag, and
// reports the action to the parent program.
func (s Switch) fire(a toggle.Action, p toggle.Props) tea.Cmd {
	next := s.tg.Peek(a)
	p.Trigger()
	name := s.tg.Name()
	return func() tea.Msg {
		return ToggleMsg{Name: name, Next: next, Action: a}
	}
}

// View renders the mark and label for the resolved state.
func (s Switch) View() string {
	mark := s.styles.Off.Render(s.styles.OffMark)
	if s.tg.On() {
		mark = s.styles.On.Render(s.styles.OnMark)
	}
	label := s.styles.Label
	if s.focused {
		label = s.styles.Focused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, mark, " ", label.Render(s.label))
}

// On returns the resolved value of the underlying toggle.
func (s Switch) On() bool {
	return s.tg.On()
}

// Name returns the diagnostic label of the underlying toggle.
func (s Switch) Name() string {
	return s.tg.Name()
}

// SetControl supplies or clears the control value of the underlying
// toggle. Mode switches are reported as misuse, same as on the
// toggle itself.
func (s Switch) SetControl(v *bool) {
	s.tg.SetControl(v)
}

// Focus makes the switch receive key events.
func (s Switch) Focus() Switch {
	s.focused = true
	return s
}

// Blur makes the switch ignore key events.
func (s Switch) Blur() Switch {
	s.focused = false
	return s
}

// Focused reports whether the switch receives key events.
func (s Switch) Focused() bool {
	return s.focused
}
