package middleware

import "context"

// contextKey is a private key type for request-scoped values.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	operatorKey  = contextKey("operator")
)

// GetOperatorFromCtx retrieves the authenticated operator name from the
// request context. The boolean reports whether auth middleware set it.
func GetOperatorFromCtx(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(operatorKey).(string)
	return operator, ok
}
