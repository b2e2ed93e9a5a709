package repository

import (
	"database/sql"

	"libraryapp/internal/entity"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Add inserts a book exactly as entered on the form.
func (r *BookRepository) Add(name, category, condition, status string) error {
	_, err := r.db.Exec(`
        INSERT INTO books (book_name, category, condition, status)
        VALUES ($1, $2, $3, $4)
    `, name, category, condition, status)
	return err
}

// Delete removes a book by id. Existing borrow records keep their
// book_id; history joins simply stop matching.
func (r *BookRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM books WHERE book_id = $1`, id)
	return err
}

// All returns every book for administrative inspection.
func (r *BookRepository) All() ([]entity.Book, error) {
	return r.list(`
        SELECT book_id, book_name, category, condition, status
        FROM books
        ORDER BY book_id
    `)
}

// Available returns the books open for borrowing.
func (r *BookRepository) Available() ([]entity.Book, error) {
	return r.list(`
        SELECT book_id, book_name, category, condition, status
        FROM books
        WHERE status = $1
        ORDER BY book_id
    `, entity.StatusAvailable)
}

func (r *BookRepository) list(query string, args ...any) ([]entity.Book, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &b.Condition, &b.Status); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
