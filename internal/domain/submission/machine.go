// Package submission models the lifecycle of one form submission as a small
// state machine. A Machine lives for the duration of a single submit event.
package submission

import (
	"fmt"

	"github.com/jsamuelsen11/campus-web/internal/domain"
)

// State is a stage of a submission.
type State string

const (
	StateIdle               State = "idle"
	StateValidating         State = "validating"
	StateSubmitting         State = "submitting"
	StateSucceeded          State = "succeeded"
	StateRejectedBySpamGate State = "rejected_by_spam_gate"
)

// Outcome summarises where a submission ended, for logs and metrics.
type Outcome string

const (
	OutcomeInvalid  Outcome = "invalid"
	OutcomeRejected Outcome = "rejected"
	OutcomeAccepted Outcome = "accepted"
	OutcomeIgnored  Outcome = "ignored"
)

var transitions = map[State][]State{
	StateIdle:               {StateValidating},
	StateValidating:         {StateIdle, StateSubmitting},
	StateSubmitting:         {StateSucceeded, StateRejectedBySpamGate},
	StateSucceeded:          {StateIdle},
	StateRejectedBySpamGate: {StateIdle},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine tracks the current state and the path taken to reach it.
type Machine struct {
	state State
	path  []State
}

// NewMachine returns a machine in Idle.
func NewMachine() *Machine {
	return &Machine{state: StateIdle, path: []State{StateIdle}}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Path returns every state visited, starting with Idle.
func (m *Machine) Path() []State {
	out := make([]State, len(m.path))
	copy(out, m.path)
	return out
}

// To moves the machine to the next state.
func (m *Machine) To(next State) error {
	if !CanTransition(m.state, next) {
		return fmt.Errorf("submission: %s -> %s: %w", m.state, next, domain.ErrConflict)
	}
	m.state = next
	m.path = append(m.path, next)
	return nil
}

// Outcome classifies the path taken so far.
func (m *Machine) Outcome() Outcome {
	for i := len(m.path) - 1; i >= 0; i-- {
		switch m.path[i] {
		case StateSucceeded, StateSubmitting:
			return OutcomeAccepted
		case StateRejectedBySpamGate:
			return OutcomeRejected
		case StateValidating:
			return OutcomeInvalid
		}
	}
	return OutcomeIgnored
}
