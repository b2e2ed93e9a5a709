package handler

import (
	"html/template"
	"net/http"

	"libraryapp/internal/session"
)

type IndexHandler struct {
	sessions *session.Store
	tmpl     *template.Template
}

func NewIndexHandler(sessions *session.Store) *IndexHandler {
	return &IndexHandler{
		sessions: sessions,
		tmpl:     mustParse("index.html"),
	}
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, pageData(h.sessions, w, r, "Campus Library"))
}
