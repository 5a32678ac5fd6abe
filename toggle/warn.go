package toggle

import (
	"fmt"
	"log/slog"
)

// Warner receives misuse diagnostics. Warnings are advisory only:
// they never change state, returned values, or control flow.
type Warner interface {
	Warnf(format string, args ...any)
}

// WarnerFunc adapts a function to the Warner interface.
type WarnerFunc func(format string, args ...any)

// Warnf calls f.
func (f WarnerFunc) Warnf(format string, args ...any) {
	f(format, args...)
}

// NopWarner discards all diagnostics. Use it to silence the detector
// in production builds.
type NopWarner struct{}

// Warnf does nothing.
func (NopWarner) Warnf(string, ...any) {}

// defaultWarner logs through the process slog logger.
var defaultWarner Warner = WarnerFunc(func(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...))
})

// checkMisuse re-evaluates the three misuse conditions. Runs at
// construction and after every control change. Each warning fires at
// most once per component: the creation-time mode is the fixed
// reference, so a mode switch is a permanent alarm, not something
// re-armed by flipping back.
func (t *Toggle) checkMisuse() {
	controlled := t.IsControlled()

	if controlled && t.onChange == nil && !t.readOnly && !t.warnedReadOnly {
		t.warnedReadOnly = true
		t.warner.Warnf("%s: a control value is supplied without OnChange, making the toggle effectively read-only; pass OnChange to make it interactive, or set ReadOnly if this is intended", t.name)
	}
	if controlled && !t.wasControlled && !t.warnedToControlled {
		t.warnedToControlled = true
		t.warner.Warnf("%s: changing from uncontrolled to controlled; a toggle should stay in one mode for its lifetime, so decide between a control value and internal state up front", t.name)
	}
	if !controlled && t.wasControlled && !t.warnedToUncontrolled {
		t.warnedToUncontrolled = true
		t.warner.Warnf("%s: changing from controlled to uncontrolled; a toggle should stay in one mode for its lifetime, so decide between a control value and internal state up front", t.name)
	}
}
