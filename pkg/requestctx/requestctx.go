// Package requestctx carries the request id and acting party of a call
// from the HTTP edge down to the audit trail.
package requestctx

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor"
)

const (
	DefaultActor = "system"

	// Widths of audit_logs.request_id and audit_logs.actor.
	MaxRequestIDLength = 64
	MaxActorLength     = 100
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// RequestID extracts the request id from ctx.
func RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// Actor extracts the actor from ctx, falling back to DefaultActor.
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}
