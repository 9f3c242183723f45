// Package latency stands in for the network round-trip of a remote API by
// holding every operation for a configured delay.
package latency

import (
	"context"
	"time"
)

// Kind selects which delay an operation waits for
type Kind int

const (
	Read Kind = iota
	Write
	Transition
)

type Simulator struct {
	delays [3]time.Duration
}

func New(read, write, transition time.Duration) *Simulator {
	return &Simulator{delays: [3]time.Duration{read, write, transition}}
}

// None returns a simulator that never waits
func None() *Simulator {
	return &Simulator{}
}

// Delay reports the configured delay for kind
func (s *Simulator) Delay(kind Kind) time.Duration {
	if s == nil || kind < Read || kind > Transition {
		return 0
	}
	return s.delays[kind]
}

// Wait blocks for the delay of kind. It returns early when ctx is done; the
// caller carries on with the operation either way.
func (s *Simulator) Wait(ctx context.Context, kind Kind) {
	d := s.Delay(kind)
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
