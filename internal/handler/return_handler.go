package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

type ReturnHandler struct {
	records  *repository.RecordRepository
	sessions *session.Store
	tmpl     *template.Template
}

func NewReturnHandler(records *repository.RecordRepository, sessions *session.Store) *ReturnHandler {
	return &ReturnHandler{
		records:  records,
		sessions: sessions,
		tmpl:     mustParse("return.html"),
	}
}

// ReturnPage lists the user's outstanding loans.
func (h *ReturnHandler) ReturnPage(w http.ResponseWriter, r *http.Request) {
	cur := h.sessions.Current(r)

	loans, err := h.records.OutstandingByUser(cur.UserID)
	if err != nil {
		serverError(w, "list outstanding loans", err)
		return
	}

	data := pageData(h.sessions, w, r, "Return a book")
	data["Loans"] = loans
	render(w, h.tmpl, data)
}

// Return closes a loan. The record lookup is scoped to the signed-in
// user, so a record id belonging to someone else counts as not found.
func (h *ReturnHandler) Return(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	recordID, err := strconv.Atoi(r.FormValue("record_id"))
	if err != nil {
		h.sessions.Flash(w, r, "error", "No outstanding borrow record was found.")
		http.Redirect(w, r, "/return", http.StatusSeeOther)
		return
	}

	cur := h.sessions.Current(r)
	err = h.records.Return(cur.UserID, recordID, r.FormValue("return_date"))
	if errors.Is(err, repository.ErrRecordNotFound) {
		h.sessions.Flash(w, r, "error", "No outstanding borrow record was found.")
		http.Redirect(w, r, "/return", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "return book", err)
		return
	}

	h.sessions.Flash(w, r, "success", "Book returned successfully!")
	http.Redirect(w, r, "/user_dashboard", http.StatusSeeOther)
}
