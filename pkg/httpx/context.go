package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeySessionID ctxKey = "session_id"
)

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID    int64
	SessionID string
}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, CtxKeySessionID, p.SessionID)
	return ctx
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok && id > 0
}

// SessionIDFromContext returns the authenticated session id, if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(CtxKeySessionID).(string)
	return sid, ok && sid != ""
}
