package wms

import "fmt"

// State is one value from the closed job lifecycle vocabulary.
// Declaration order is meaningful: report columns follow it.
type State int

const (
	StateUnknown State = iota
	StateMisfit
	StateUnready
	StateReady
	StatePending
	StateRunning
	StateDeleted
	StateHeld
	StateSucceeded
	StateFailed
)

var stateNames = [...]string{
	StateUnknown:   "UNKNOWN",
	StateMisfit:    "MISFIT",
	StateUnready:   "UNREADY",
	StateReady:     "READY",
	StatePending:   "PENDING",
	StateRunning:   "RUNNING",
	StateDeleted:   "DELETED",
	StateHeld:      "HELD",
	StateSucceeded: "SUCCEEDED",
	StateFailed:    "FAILED",
}

// AllStates returns the vocabulary in declaration order.
func AllStates() []State {
	states := make([]State, len(stateNames))
	for i := range stateNames {
		states[i] = State(i)
	}
	return states
}

// Valid reports whether s is within the declared vocabulary.
func (s State) Valid() bool {
	return s >= StateUnknown && int(s) < len(stateNames)
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState maps a state name back to its State value.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateUnknown, fmt.Errorf("unknown job state %q", name)
}

// MarshalText encodes the state by name so reports stay readable on the
// wire, both as values and as state-count map keys.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid job state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
