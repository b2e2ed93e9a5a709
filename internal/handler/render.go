package handler

import (
	"html/template"
	"log"
	"net/http"

	"libraryapp/internal/session"
	"libraryapp/internal/templates"
)

func mustParse(name string) *template.Template {
	return template.Must(template.ParseFS(templates.FS, name))
}

// pageData builds the common template payload and drains pending
// flash messages into it.
func pageData(st *session.Store, w http.ResponseWriter, r *http.Request, title string) map[string]any {
	return map[string]any{
		"Title":    title,
		"Errors":   st.Flashes(w, r, "error"),
		"Messages": st.Flashes(w, r, "success"),
	}
}

func render(w http.ResponseWriter, tmpl *template.Template, data map[string]any) {
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("render %s: %v", tmpl.Name(), err)
	}
}

func serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
