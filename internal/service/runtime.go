package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-erp-admin/internal/actor"
	"go-erp-admin/pkg/latency"

	log "github.com/sirupsen/logrus"
)

// Event is published after every successful mutation or transition
type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	Entity  string      `json:"entity"`
	ID      interface{} `json:"id"`
	Message string      `json:"message"`
	User    actor.Actor `json:"user"`
}

// EventDataChange is the Type of every Event
const EventDataChange = "data_change"

// Notifier receives change events, usually the websocket hub
type Notifier interface {
	Notify(event Event)
}

// Runtime is what every service shares besides its repositories
type Runtime struct {
	Latency  *latency.Simulator
	Notifier Notifier
	Clock    func() time.Time
}

func (r Runtime) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

// wait holds the caller for the simulated round-trip. The returned context
// keeps the values of ctx but not its cancellation, so the operation runs to
// completion once started.
func (r Runtime) wait(ctx context.Context, kind latency.Kind) context.Context {
	r.Latency.Wait(ctx, kind)
	return context.WithoutCancel(ctx)
}

// publish announces a change made by the actor of ctx
func (r Runtime) publish(ctx context.Context, action, entity string, id interface{}, label string) {
	who := actor.From(ctx)
	event := Event{
		Type:    EventDataChange,
		Action:  action,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s %s %s '%s'", who.Name, action, entity, label),
		User:    who,
	}
	log.WithFields(log.Fields{
		"action": action,
		"entity": entity,
		"id":     id,
		"user":   who.Name,
	}).Debug("change")

	if r.Notifier != nil {
		r.Notifier.Notify(event)
	}
}

// Sequence numbers documents as PREFIX-YYYYMMDD-NNNN. The counter is
// process-wide and never resets, so two numbers never repeat within a run.
type Sequence struct {
	prefix string
	mu     sync.Mutex
	n      int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%s-%04d", s.prefix, now.Format("20060102"), s.n)
}

// nextFree draws numbers until exists reports one unused by the store
func (s *Sequence) nextFree(ctx context.Context, now time.Time, exists func(context.Context, string) (bool, error)) (string, error) {
	for {
		no := s.Next(now)
		taken, err := exists(ctx, no)
		if err != nil {
			return "", err
		}
		if !taken {
			return no, nil
		}
	}
}

// Event actions
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionSubmitted = "submitted"
	ActionApproved  = "approved"
)
