package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

type BorrowHandler struct {
	books    *repository.BookRepository
	records  *repository.RecordRepository
	sessions *session.Store
	tmpl     *template.Template
}

func NewBorrowHandler(books *repository.BookRepository, records *repository.RecordRepository, sessions *session.Store) *BorrowHandler {
	return &BorrowHandler{
		books:    books,
		records:  records,
		sessions: sessions,
		tmpl:     mustParse("borrow.html"),
	}
}

// BorrowPage lists the books currently open for borrowing.
func (h *BorrowHandler) BorrowPage(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.Available()
	if err != nil {
		serverError(w, "list available books", err)
		return
	}

	data := pageData(h.sessions, w, r, "Borrow a book")
	data["Books"] = books
	render(w, h.tmpl, data)
}

// Borrow takes the chosen book. Dates pass through unvalidated, exactly
// as submitted.
func (h *BorrowHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	bookID, err := strconv.Atoi(r.FormValue("book_id"))
	if err != nil {
		h.sessions.Flash(w, r, "error", "This book is not available for borrowing.")
		http.Redirect(w, r, "/borrow", http.StatusSeeOther)
		return
	}

	cur := h.sessions.Current(r)
	err = h.records.Borrow(cur.UserID, bookID, r.FormValue("borrow_date"), r.FormValue("due_date"))
	if errors.Is(err, repository.ErrBookUnavailable) {
		h.sessions.Flash(w, r, "error", "This book is not available for borrowing.")
		http.Redirect(w, r, "/borrow", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "borrow book", err)
		return
	}

	h.sessions.Flash(w, r, "success", "Book borrowed successfully!")
	http.Redirect(w, r, "/user_dashboard", http.StatusSeeOther)
}
