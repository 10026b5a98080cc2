package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/auranode/auranode/internal/web/templates/layout"
)

// Flash channels. Exactly two: a success notice and an error notice.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const flashCookieName = "flash"

// GetFlash retrieves the pending flash message from the request context.
// Returns nil if none is set.
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash queues a one-time message for the next rendered page.
func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    kind + ":" + message,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that consumes a pending flash message: the
// message is placed in the request context and the cookie cleared, so it
// renders exactly once.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			if cookie, err := r.Cookie(flashCookieName); err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	kind, message, found := strings.Cut(value, ":")
	if !found {
		return &layout.FlashMessage{Type: FlashError, Message: value}
	}
	if kind != FlashSuccess && kind != FlashError {
		kind = FlashError
	}
	return &layout.FlashMessage{Type: kind, Message: message}
}
