package handlers

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// UserIDContextKey is the key under which the acting user's id is stored in
// the request context.
const UserIDContextKey ContextKey = "user_id"

// CurrentUser injects the acting user's id into the request context. There is
// no session or token auth yet, so the id is a fixed value from configuration;
// once an auth layer exists this middleware is the only place that needs to
// change, the favorite handlers already read identity from the context.
func CurrentUser(userID uint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext extracts the acting user's id placed there by CurrentUser.
func userIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDContextKey).(uint)
	return id, ok
}
