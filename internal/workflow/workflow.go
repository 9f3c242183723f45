// Package workflow models order approval as a transition table keyed by
// (current status, action). Pairs missing from the table are rejected.
package workflow

import (
	"errors"
	"fmt"
)

// Action is an operation that moves an order to its next status
type Action string

const (
	Submit  Action = "submit"
	Approve Action = "approve"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError names the status and action that had no transition
type TransitionError struct {
	From   string
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %s", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Rule is one row of a transition table
type Rule[S comparable] struct {
	From   S
	Action Action
	To     S
}

type edge[S comparable] struct {
	from   S
	action Action
}

type Machine[S comparable] struct {
	next map[edge[S]]S
}

func New[S comparable](rules ...Rule[S]) *Machine[S] {
	m := &Machine[S]{next: make(map[edge[S]]S, len(rules))}
	for _, r := range rules {
		m.next[edge[S]{r.From, r.Action}] = r.To
	}
	return m
}

// Next returns the status reached by applying action to from
func (m *Machine[S]) Next(from S, action Action) (S, error) {
	to, ok := m.next[edge[S]{from, action}]
	if !ok {
		var zero S
		return zero, &TransitionError{From: fmt.Sprint(from), Action: action}
	}
	return to, nil
}

// Can reports whether action is defined for from
func (m *Machine[S]) Can(from S, action Action) bool {
	_, ok := m.next[edge[S]{from, action}]
	return ok
}
