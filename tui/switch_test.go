package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizafairlady/go-toggle/toggle"
)

func enterKey() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func runeKey(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestSwitch(t *testing.T, mutate func(*SwitchConfig)) Switch {
	t.Helper()
	cfg := DefaultSwitchConfig()
	cfg.Label = "lamp"
	cfg.Warner = toggle.NopWarner{}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSwitch(cfg)
}

func TestSwitchTogglesWhenFocused(t *testing.T) {
	s := newTestSwitch(t, nil).Focus()
	require.False(t, s.On())

	s, cmd := s.Update(enterKey())
	assert.True(t, s.On())
	require.NotNil(t, cmd)

	msg, ok := cmd().(ToggleMsg)
	require.True(t, ok)
	assert.Equal(t, "lamp", msg.Name)
	assert.Equal(t, toggle.ActionToggle, msg.Action.Kind)
	assert.True(t, msg.Next.On)
}

func TestSwitchIgnoresKeysWhenBlurred(t *testing.T) {
	s := newTestSwitch(t, nil)
	s, cmd := s.Update(enterKey())
	assert.False(t, s.On())
	assert.Nil(t, cmd)
}

func TestSwitchReset(t *testing.T) {
	s := newTestSwitch(t, func(cfg *SwitchConfig) {
		cfg.InitialOn = true
	}).Focus()

	s, _ = s.Update(enterKey())
	require.False(t, s.On())

	s, cmd := s.Update(runeKey('r'))
	assert.True(t, s.On())
	require.NotNil(t, cmd)

	msg, ok := cmd().(ToggleMsg)
	require.True(t, ok)
	assert.Equal(t, toggle.ActionReset, msg.Action.Kind)
	assert.True(t, msg.Next.On)
}

func TestControlledSwitchRendersControlValue(t *testing.T) {
	on := true
	var notified int
	s := newTestSwitch(t, func(cfg *SwitchConfig) {
		cfg.Control = &on
		cfg.OnChange = func(toggle.State, toggle.Action) { notified++ }
	}).Focus()

	require.True(t, s.On())

	// The key fires the action and the notification, but the
	// resolved value stays with the control value.
	s, cmd := s.Update(enterKey())
	assert.True(t, s.On())
	assert.Equal(t, 1, notified)

	msg, ok := cmd().(ToggleMsg)
	require.True(t, ok)
	assert.False(t, msg.Next.On, "Next reports the would-be state")

	// The owner updates through the pointer; the switch follows.
	on = false
	assert.False(t, s.On())
}

func TestSwitchViewMarks(t *testing.T) {
	s := newTestSwitch(t, nil)
	assert.Contains(t, s.View(), "[ ]")
	assert.Contains(t, s.View(), "lamp")

	s = s.Focus()
	s, _ = s.Update(enterKey())
	assert.Contains(t, s.View(), "[x]")
}

func TestSwitchMisuseWarningReachesWarner(t *testing.T) {
	var warnings []string
	cfg := DefaultSwitchConfig()
	cfg.Label = "sound"
	on := true
	cfg.Control = &on
	cfg.Warner = toggle.WarnerFunc(func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	NewSwitch(cfg)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "read-only")
}

func TestNewSwitchFillsZeroKeyMap(t *testing.T) {
	s := NewSwitch(SwitchConfig{Label: "x", Warner: toggle.NopWarner{}}).Focus()
	s, _ = s.Update(enterKey())
	assert.True(t, s.On())
}
