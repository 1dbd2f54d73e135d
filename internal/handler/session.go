package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the traveler's session identity. The client mints a
// UUID once and sends it on every request; the server never issues IDs.
const SessionHeader = "X-Session-ID"

type sessionKeyType struct{}

var sessionKey sessionKeyType

// RequireSession rejects requests without a well-formed X-Session-ID header
// and stashes the validated ID in the request context for handlers.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(SessionHeader)
		if raw == "" {
			badRequest(w, SessionHeader+" header is required")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(w, SessionHeader+" must be a UUID")
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the session ID set by RequireSession. It is empty only
// on routes that skipped the middleware, which is a programming error.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey).(string)
	return id
}
