package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	pending ──┬──> preparing ──┬──> completed
//	          │                │
//	          └──> cancelled <─┘
//
// completed and cancelled are terminal; no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status string

const (
	// Pending is the initial status assigned when an order is placed.
	// Orders in this status are waiting for the kitchen to pick them up.
	Pending Status = "pending"

	// Preparing indicates the kitchen has started cooking the order.
	Preparing Status = "preparing"

	// Completed indicates the order has been cooked and served.
	// This is a terminal state with no further transitions allowed.
	Completed Status = "completed"

	// Cancelled indicates the order was withdrawn before completion.
	// This is a terminal state; the record is kept for history.
	Cancelled Status = "cancelled"
)

var (
	// ErrInvalidStatus is the sentinel error for status values outside the
	// four defined states.
	ErrInvalidStatus = errors.New("status is not recognized")

	// ErrIllegalTransition is the sentinel error for recognized statuses
	// that the state machine does not allow from the current state.
	ErrIllegalTransition = errors.New("status transition is not allowed")
)

// InvalidStatusError reports a status string that is not one of the defined states.
type InvalidStatusError struct {
	Value string
}

func NewInvalidStatusError(value string) *InvalidStatusError {
	return &InvalidStatusError{Value: value}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidStatus, e.Value)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// IllegalTransitionError reports a transition between two recognized statuses
// that the state machine forbids.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// validNext is the allowed transition graph. Terminal states map to an
// empty set rather than being absent, so membership checks stay uniform.
var validNext = map[Status]map[Status]bool{
	Pending:   {Preparing: true, Cancelled: true},
	Preparing: {Completed: true, Cancelled: true},
	Completed: {},
	Cancelled: {},
}

// ParseStatus converts an externally supplied string into a Status.
//
// Returns InvalidStatusError for anything outside the four defined states.
// Parsing is the single entry point for untrusted status values; once a
// Status exists it is known to be a member of the state machine.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if _, ok := validNext[s]; !ok {
		return "", NewInvalidStatusError(value)
	}
	return s, nil
}

// String returns the wire/persistence representation of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the Status value is one of the defined states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := validNext[s]; !ok {
		return NewInvalidStatusError(string(s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	next, ok := validNext[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// Both statuses must be recognized; unrecognized values never transition.
func (s Status) CanTransitionTo(next Status) bool {
	return validNext[s][next]
}

// TransitionTo validates and performs a state transition.
//
// The requested status is checked for membership in the state machine first,
// so an unrecognized value yields InvalidStatusError regardless of the
// current state; a recognized but disallowed move yields IllegalTransitionError.
//
// Returns:
//   - (next, nil) on a valid transition
//   - ("", error) when the transition is rejected
//
// TransitionTo is a pure function of (s, next); it performs no I/O and is
// the only place transition legality is decided.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", NewIllegalTransitionError(s, next)
	}
	return next, nil
}
