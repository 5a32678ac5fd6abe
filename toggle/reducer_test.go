package toggle

import "testing"

func TestDefaultReducerToggle(t *testing.T) {
	s := DefaultReducer(State{On: false}, Action{Kind: ActionToggle})
	if !s.On {
		t.Errorf("toggle from off: on = %v, want true", s.On)
	}
	s = DefaultReducer(State{On: true}, Action{Kind: ActionToggle})
	if s.On {
		t.Errorf("toggle from on: on = %v, want false", s.On)
	}
}

func TestDefaultReducerReset(t *testing.T) {
	s := DefaultReducer(State{On: true}, Action{Kind: ActionReset, State: State{On: false}})
	if s.On {
		t.Errorf("reset: on = %v, want false", s.On)
	}
	s = DefaultReducer(State{On: false}, Action{Kind: ActionReset, State: State{On: true}})
	if !s.On {
		t.Errorf("reset: on = %v, want true", s.On)
	}
}

func TestDefaultReducerUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("unknown action kind did not panic")
		}
	}()
	DefaultReducer(State{}, Action{Kind: ActionKind(42)})
}

func TestActionKindString(t *testing.T) {
	if got := ActionToggle.String(); got != "toggle" {
		t.Errorf("ActionToggle = %q", got)
	}
	if got := ActionReset.String(); got != "reset" {
		t.Errorf("ActionReset = %q", got)
	}
	if got := ActionKind(42).String(); got != "ActionKind(42)" {
		t.Errorf("unknown kind = %q", got)
	}
}
