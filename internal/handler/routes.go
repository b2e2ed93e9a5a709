package handler

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"libraryapp/internal/middleware"
	"libraryapp/internal/repository"
	"libraryapp/internal/session"
)

// Handlers bundles every page handler behind one router.
type Handlers struct {
	sessions *session.Store

	Index  *IndexHandler
	Login  *LoginHandler
	User   *UserHandler
	Borrow *BorrowHandler
	Return *ReturnHandler
	Admin  *AdminHandler
}

func New(db *sql.DB, sessions *session.Store, adminCode string) *Handlers {
	users := repository.NewUserRepository(db)
	books := repository.NewBookRepository(db)
	records := repository.NewRecordRepository(db)

	return &Handlers{
		sessions: sessions,
		Index:    NewIndexHandler(sessions),
		Login:    NewLoginHandler(users, sessions, adminCode),
		User:     NewUserHandler(records, sessions),
		Borrow:   NewBorrowHandler(books, records, sessions),
		Return:   NewReturnHandler(records, sessions),
		Admin:    NewAdminHandler(books, records, sessions),
	}
}

// Router wires routes and the session gates. Debug adds per-request
// logging.
func (h *Handlers) Router(debug bool) chi.Router {
	r := chi.NewRouter()
	if debug {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)

	r.Get("/", h.Index.Index)
	r.Get("/login", h.Login.LoginPage)
	r.Post("/login", h.Login.Login)
	r.Get("/logout", h.Login.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(h.sessions))
		r.Get("/user_dashboard", h.User.Dashboard)
		r.Get("/borrow", h.Borrow.BorrowPage)
		r.Post("/borrow", h.Borrow.Borrow)
		r.Get("/return", h.Return.ReturnPage)
		r.Post("/return", h.Return.Return)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.sessions))
		r.Get("/admin_dashboard", h.Admin.Dashboard)
		r.Post("/admin_dashboard", h.Admin.Dashboard)
		r.Get("/add_book", h.Admin.AddBookPage)
		r.Post("/add_book", h.Admin.AddBook)
		r.Post("/delete_book", h.Admin.DeleteBook)
		r.Get("/check_books", h.Admin.CheckBooks)
	})

	return r
}
