package handler

import (
	"html/template"
	"net/http"

	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

type UserHandler struct {
	records  *repository.RecordRepository
	sessions *session.Store
	tmpl     *template.Template
}

func NewUserHandler(records *repository.RecordRepository, sessions *session.Store) *UserHandler {
	return &UserHandler{
		records:  records,
		sessions: sessions,
		tmpl:     mustParse("user_dashboard.html"),
	}
}

// Dashboard lists the signed-in user's complete borrow history.
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	cur := h.sessions.Current(r)

	records, err := h.records.HistoryByUser(cur.UserID)
	if err != nil {
		serverError(w, "load borrow history", err)
		return
	}

	data := pageData(h.sessions, w, r, "My books")
	data["Name"] = cur.Name
	data["Records"] = records
	render(w, h.tmpl, data)
}
