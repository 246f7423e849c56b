package middleware

import (
	"log/slog"
	"net/http"

	"github.com/marjuksajid/SkillChronicle/internal/ctxkeys"
	"github.com/marjuksajid/SkillChronicle/internal/repository"
	"github.com/marjuksajid/SkillChronicle/internal/session"
)

// Session checks the server-side session and adds the user to the request
// context if the session names a user that still exists. A session
// pointing at a vanished user is cleared.
func Session(sessions *session.Manager, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.UserID(r)
			if !ok {
				// No session, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.ByID(userID)
			if err != nil {
				slog.Warn("session user lookup failed", "error", err, "user_id", userID)
				err = sessions.SignOut(w, r)
				if err != nil {
					slog.Error("failed to clear stale session", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			// Security: keep the password hash out of the request context
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the user is authenticated, redirecting anonymous
// requests to the login page without invoking the wrapped handler.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not authenticated
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
