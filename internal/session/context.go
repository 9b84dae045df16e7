package session

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the resolved session state.
func NewContext(ctx context.Context, state State) context.Context {
	return context.WithValue(ctx, contextKey{}, state)
}

// FromContext returns the session state resolved earlier in the request.
func FromContext(ctx context.Context) (State, bool) {
	state, ok := ctx.Value(contextKey{}).(State)
	return state, ok
}
