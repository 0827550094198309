package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/civicgo/complaint-portal/userctx"
)

// SessionAdminKey is the session key holding the admin-authenticated flag.
const SessionAdminKey = "admin_logged_in"

// SessionAdminUserKey is the session key holding the admin username.
const SessionAdminUserKey = "admin_username"

// RequireAdmin ensures the session belongs to a logged-in administrator.
// If not, redirects to /admin_login and stores the intended destination.
// Runs before any store operation on administrative routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		loggedIn, ok := sess.Get(SessionAdminKey).(bool)
		if !ok || !loggedIn {
			// Store the intended destination for redirect after login
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/admin_login", http.StatusSeeOther)
			return
		}

		// Add admin username to request context for use in handlers
		ctx := r.Context()
		if username, ok := sess.Get(SessionAdminUserKey).(string); ok {
			ctx = userctx.SetAdminUsername(ctx, username)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
