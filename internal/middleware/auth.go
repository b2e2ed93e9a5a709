package middleware

import (
	"net/http"

	"libraryapp/internal/session"
)

// RequireUser admits logged-in non-admin sessions. Admins have their own
// dashboard and are bounced to login like everyone else.
func RequireUser(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cur := store.Current(r)
			if !cur.LoggedIn() || cur.IsAdmin {
				store.Flash(w, r, "error", "Please log in as a regular user.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin admits sessions holding the admin flag.
func RequireAdmin(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cur := store.Current(r)
			if !cur.IsAdmin {
				store.Flash(w, r, "error", "Only admins can access this page.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
