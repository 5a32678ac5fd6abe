package toggle

// Props is the property bag produced by the builders below. It
// carries what a renderable control needs to display the toggle and
// to drive it from an interaction event.
type Props struct {
	// Pressed is the resolved On value at build time.
	Pressed bool
	// Trigger runs the caller's handlers, then the toggle action.
	Trigger func()
}

// TogglerProps builds the prop bag for the control that flips the
// toggle. Caller handlers run before the flip, in order; nil
// handlers are skipped.
func (t *Toggle) TogglerProps(handlers ...func()) Props {
	return Props{
		Pressed: t.On(),
		Trigger: callAll(append(handlers, t.Toggle)...),
	}
}

// ResetterProps builds the prop bag for the control that restores
// the toggle to its initial snapshot.
func (t *Toggle) ResetterProps(handlers ...func()) Props {
	return Props{
		Pressed: t.On(),
		Trigger: callAll(append(handlers, t.Reset)...),
	}
}

// callAll merges handlers into one, skipping nils.
func callAll(fns ...func()) func() {
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}
