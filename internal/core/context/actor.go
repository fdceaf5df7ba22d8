// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Actor contains the authenticated actor information.
// The system has a single authenticated operator, so this carries
// only identity, not roles or permissions.
type Actor struct {
	Username string
}

type actorContextKey struct{}

// WithActor adds Actor to context.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// GetActor returns Actor from context.
func GetActor(ctx context.Context) *Actor {
	if v, ok := ctx.Value(actorContextKey{}).(*Actor); ok {
		return v
	}
	return nil
}

// GetUsername returns the actor username from context or empty string.
func GetUsername(ctx context.Context) string {
	if a := GetActor(ctx); a != nil {
		return a.Username
	}
	return ""
}
