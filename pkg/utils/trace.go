package utils

import "context"

type traceIDKey struct{}

// WithTraceID stores the request trace id so code below the HTTP layer can
// log it.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

func TraceIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
