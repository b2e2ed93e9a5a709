package handler

import (
	"html/template"
	"net/http"
	"strconv"

	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

type AdminHandler struct {
	books    *repository.BookRepository
	records  *repository.RecordRepository
	sessions *session.Store

	dashboardTmpl  *template.Template
	addBookTmpl    *template.Template
	checkBooksTmpl *template.Template
}

func NewAdminHandler(books *repository.BookRepository, records *repository.RecordRepository, sessions *session.Store) *AdminHandler {
	return &AdminHandler{
		books:          books,
		records:        records,
		sessions:       sessions,
		dashboardTmpl:  mustParse("admin_dashboard.html"),
		addBookTmpl:    mustParse("add_book.html"),
		checkBooksTmpl: mustParse("check_books.html"),
	}
}

// Dashboard shows the user-id form; on POST it adds that user's full
// borrow history. A user id without records renders an empty table,
// existence is not checked.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := pageData(h.sessions, w, r, "Librarian dashboard")

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		userID, err := strconv.Atoi(r.FormValue("user_id"))
		if err != nil {
			h.sessions.Flash(w, r, "error", "User id must be a number.")
			http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
			return
		}

		records, err := h.records.HistoryByUser(userID)
		if err != nil {
			serverError(w, "load user history", err)
			return
		}
		data["UserID"] = userID
		data["Records"] = records
	}

	render(w, h.dashboardTmpl, data)
}

func (h *AdminHandler) AddBookPage(w http.ResponseWriter, r *http.Request) {
	render(w, h.addBookTmpl, pageData(h.sessions, w, r, "Add a book"))
}

// AddBook inserts the form fields as-is; no duplicate or type checks.
func (h *AdminHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	err := h.books.Add(
		r.FormValue("book_name"),
		r.FormValue("category"),
		r.FormValue("condition"),
		r.FormValue("status"),
	)
	if err != nil {
		serverError(w, "add book", err)
		return
	}

	h.sessions.Flash(w, r, "success", "Book added successfully!")
	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}

// DeleteBook removes a book by id. Outstanding borrow records keep
// referencing the id and drop out of joined listings.
func (h *AdminHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	bookID, err := strconv.Atoi(r.FormValue("book_id"))
	if err != nil {
		h.sessions.Flash(w, r, "error", "Book id must be a number.")
		http.Redirect(w, r, "/check_books", http.StatusSeeOther)
		return
	}

	if err := h.books.Delete(bookID); err != nil {
		serverError(w, "delete book", err)
		return
	}

	h.sessions.Flash(w, r, "success", "Book deleted successfully!")
	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}

// CheckBooks lists every book for inspection.
func (h *AdminHandler) CheckBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.All()
	if err != nil {
		serverError(w, "list books", err)
		return
	}

	data := pageData(h.sessions, w, r, "All books")
	data["Books"] = books
	render(w, h.checkBooksTmpl, data)
}
