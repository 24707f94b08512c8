package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// State is the lifecycle state of a leg.
//
// State transitions:
//
//	Estimated ──> Assigned ──> Started ──> Finished
//
// There is no skipping and no rollback. Finished is terminal.
type State int

const (
	// StateUnknown catches uninitialized values.
	StateUnknown State = iota

	// StateEstimated is the initial state of a committed leg. No truck is assigned yet.
	StateEstimated

	// StateAssigned means a truck has been reserved for the leg.
	StateAssigned

	// StateStarted means the truck has departed from the origin warehouse.
	StateStarted

	// StateFinished means the truck has arrived and the real cost has been recorded.
	StateFinished
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "Unknown",
		StateEstimated: "Estimated",
		StateAssigned:  "Assigned",
		StateStarted:   "Started",
		StateFinished:  "Finished",
	}
}

// ParseState converts a persisted state name back into a State.
func ParseState(s string) (State, error) {
	for state, name := range getStateStrings() {
		if name == s && state != StateUnknown {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid leg state", s))
}

// Validate rejects StateUnknown and out-of-range values.
func (s State) Validate() error {
	if s <= StateUnknown || s > StateFinished {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid leg state", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HasTruck reports whether a leg in this state must carry a truck reference.
func (s State) HasTruck() bool {
	return s == StateAssigned || s == StateStarted || s == StateFinished
}

// HasStartTime reports whether a leg in this state must carry a start timestamp.
func (s State) HasStartTime() bool {
	return s == StateStarted || s == StateFinished
}

// HasFinishTime reports whether a leg in this state must carry a finish timestamp.
func (s State) HasFinishTime() bool {
	return s == StateFinished
}

// IsActive reports whether a truck held in this state is still busy with the leg.
func (s State) IsActive() bool {
	return s == StateAssigned || s == StateStarted
}

// Assign transitions Estimated to Assigned.
func (s State) Assign() (State, error) {
	return s.transition(StateEstimated, StateAssigned, "assign")
}

// Start transitions Assigned to Started.
func (s State) Start() (State, error) {
	return s.transition(StateAssigned, StateStarted, "start")
}

// Finish transitions Started to Finished.
func (s State) Finish() (State, error) {
	return s.transition(StateStarted, StateFinished, "finish")
}

func (s State) transition(from State, to State, action string) (State, error) {
	if s != from {
		return StateUnknown, errs.NewConflictError(
			"leg",
			fmt.Sprintf("cannot %s a leg in state %s, expected %s", action, s, from),
		)
	}
	return to, nil
}
