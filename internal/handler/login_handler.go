package handler

import (
	"database/sql"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

type LoginHandler struct {
	users     *repository.UserRepository
	sessions  *session.Store
	adminCode string
	tmpl      *template.Template
}

func NewLoginHandler(users *repository.UserRepository, sessions *session.Store, adminCode string) *LoginHandler {
	return &LoginHandler{
		users:     users,
		sessions:  sessions,
		adminCode: adminCode,
		tmpl:      mustParse("login.html"),
	}
}

// LoginPage renders the combined login/registration form. A session that
// is already signed in goes straight to its dashboard.
func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	cur := h.sessions.Current(r)
	if cur.LoggedIn() {
		if cur.IsAdmin {
			http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/user_dashboard", http.StatusSeeOther)
		}
		return
	}

	render(w, h.tmpl, pageData(h.sessions, w, r, "Log in"))
}

// Login signs an existing account in or registers a new one. The email
// is the lookup key; an existing account requires the same name. The
// admin flag comes from the submitted code alone, so an existing
// student account presenting the code gets an administrator session.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	adminKey := r.FormValue("admin_key")

	if name == "" || email == "" {
		h.sessions.Flash(w, r, "error", "Name and email are required.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	isAdmin := adminKey == h.adminCode

	user, err := h.users.GetByEmail(email)
	switch {
	case err == nil:
		if user.Name != name {
			h.sessions.Flash(w, r, "error", "Name does not match the email.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.sessions.Flash(w, r, "success", "Logged in successfully.")
	case errors.Is(err, sql.ErrNoRows):
		user, err = h.users.Create(name, email, isAdmin)
		if err != nil {
			serverError(w, "create user", err)
			return
		}
		h.sessions.Flash(w, r, "success", "Account created successfully!")
	default:
		serverError(w, "look up user", err)
		return
	}

	h.sessions.SignIn(w, r, session.Session{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: isAdmin,
	})

	if isAdmin {
		h.sessions.Flash(w, r, "success", "Logged in as administrator.")
		http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		return
	}
	h.sessions.Flash(w, r, "success", "Logged in as a regular user.")
	http.Redirect(w, r, "/user_dashboard", http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
