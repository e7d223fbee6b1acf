package middleware

import (
	"context"
	"net/http"

	"github.com/ottoman-ai/chef-chat/internal/session"
)

// CookieName carries the signed session token.
const CookieName = "chef_session"

type sessionKey struct{}

// Sessions resolves the signed session cookie on every request, minting a
// fresh identifier when the cookie is absent or fails verification. The
// resolved id is placed on the request context for handlers.
func Sessions(codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(CookieName); err == nil {
				if decoded, ok := codec.Decode(cookie.Value); ok {
					id = decoded
				}
			}

			if id == "" {
				id = codec.NewID()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    codec.Encode(id),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID extracts the session identifier resolved by Sessions.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
