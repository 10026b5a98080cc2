package middleware

import (
	"context"
	"net/http"

	"github.com/auranode/auranode/internal/model"
	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
	flashContextKey   contextKey = "flash"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// GetSession retrieves the authenticated session from the request context.
// Returns nil for anonymous requests.
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// GetUser returns the authenticated panel user, or nil when anonymous.
func GetUser(ctx context.Context) *model.PanelUser {
	if sess := GetSession(ctx); sess != nil {
		return &sess.User
	}
	return nil
}

// RequireAuth is the access guard for protected routes: without a valid
// session the request is redirected to the login page with an error notice
// and goes no further.
func RequireAuth(svc *account.Service, codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFromRequest(r, svc, codec)
			if sess == nil {
				SetFlash(w, FlashError, "Please log in to view that resource.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the session if present but lets anonymous requests
// through; public pages use it to show login state in the nav.
func OptionalAuth(svc *account.Service, codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFromRequest(r, svc, codec)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromRequest resolves the session cookie to a live session. A
// missing cookie, bad signature, unknown token or expired session all read
// as anonymous.
func sessionFromRequest(r *http.Request, svc *account.Service, codec *session.Codec) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	token, err := codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}

	sess, err := svc.SessionByToken(r.Context(), token)
	if err != nil {
		return nil
	}
	return sess
}
