// Package actor carries the authenticated user of a request on its context.
package actor

import "context"

type Actor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// System is the actor of work done with no authenticated user
var System = Actor{Name: "system"}

type ctxKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// From returns the actor stored on ctx, or System
func From(ctx context.Context) Actor {
	if a, ok := ctx.Value(ctxKey{}).(Actor); ok {
		return a
	}
	return System
}
