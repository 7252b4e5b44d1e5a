package sitecontent

import "context"

// ActorContext identifies who performed an edit, for telemetry and host events.
type ActorContext struct {
	UserID    string
	SessionID string
}

type actorContextKey struct{}

// ContextWithActor stores actor identifiers on the provided context.
func ContextWithActor(ctx context.Context, actor ActorContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the actor, if present.
func ActorFromContext(ctx context.Context) ActorContext {
	if ctx == nil {
		return ActorContext{}
	}
	if actor, ok := ctx.Value(actorContextKey{}).(ActorContext); ok {
		return actor
	}
	return ActorContext{}
}

type confirmerContextKey struct{}

// ContextWithConfirmer scopes a Confirmer to one request, overriding the
// library's configured one.
func ContextWithConfirmer(ctx context.Context, confirmer Confirmer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, confirmerContextKey{}, confirmer)
}

// ConfirmerFromContext extracts a request-scoped Confirmer, if present.
func ConfirmerFromContext(ctx context.Context) (Confirmer, bool) {
	if ctx == nil {
		return nil, false
	}
	confirmer, ok := ctx.Value(confirmerContextKey{}).(Confirmer)
	return confirmer, ok && confirmer != nil
}
