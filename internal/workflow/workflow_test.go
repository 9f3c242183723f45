package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status int

const (
	draft status = iota
	pending
	approved
	rejected
)

func (s status) String() string {
	return [...]string{"draft", "pending", "approved", "rejected"}[s]
}

func machine() *Machine[status] {
	return New(
		Rule[status]{From: draft, Action: Submit, To: pending},
		Rule[status]{From: pending, Action: Approve, To: approved},
	)
}

func TestNext(t *testing.T) {
	m := machine()

	next, err := m.Next(draft, Submit)
	require.NoError(t, err)
	assert.Equal(t, pending, next)

	next, err = m.Next(pending, Approve)
	require.NoError(t, err)
	assert.Equal(t, approved, next)
}

func TestUndefinedTransitions(t *testing.T) {
	m := machine()

	cases := []struct {
		from   status
		action Action
	}{
		{approved, Submit},
		{pending, Submit},
		{draft, Approve},
		{rejected, Submit},
		{rejected, Approve},
	}
	for _, tc := range cases {
		_, err := m.Next(tc.from, tc.action)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		var te *TransitionError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, tc.from.String(), te.From)
		assert.Equal(t, tc.action, te.Action)
		assert.False(t, m.Can(tc.from, tc.action))
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	_, err := machine().Next(approved, Submit)
	assert.EqualError(t, err, "cannot submit an order in status approved")
}
