package repository

import (
	"database/sql"
	"errors"

	"libraryapp/internal/entity"
)

var (
	// ErrBookUnavailable means the book is missing or already borrowed.
	ErrBookUnavailable = errors.New("book is not available")
	// ErrRecordNotFound means no outstanding record matched the request.
	ErrRecordNotFound = errors.New("borrow record not found")
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Borrow marks the book as borrowed and opens a record for it in one
// transaction. The conditional update keeps two concurrent borrowers
// from taking the same copy.
func (r *RecordRepository) Borrow(userID, bookID int, borrowDate, dueDate string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
        UPDATE books SET status = 'Borrowed'
        WHERE book_id = $1 AND status = 'Available'
    `, bookID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookUnavailable
	}

	_, err = tx.Exec(`
        INSERT INTO borrow_records (user_id, book_id, borrow_date, due_date)
        VALUES ($1, $2, $3, $4)
    `, userID, bookID, borrowDate, dueDate)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Return closes the record and frees the book. The record must belong
// to the user and still be outstanding; anything else reports not found.
func (r *RecordRepository) Return(userID, recordID int, returnDate string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bookID int
	err = tx.QueryRow(`
        UPDATE borrow_records SET return_date = $1
        WHERE record_id = $2 AND user_id = $3 AND return_date IS NULL
        RETURNING book_id
    `, returnDate, recordID, userID).Scan(&bookID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        UPDATE books SET status = 'Available' WHERE book_id = $1
    `, bookID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// HistoryByUser returns the user's complete borrow history joined with
// the book name and current status.
func (r *RecordRepository) HistoryByUser(userID int) ([]entity.HistoryRow, error) {
	rows, err := r.db.Query(`
        SELECT b.book_name, br.borrow_date, br.due_date, br.return_date, b.status
        FROM borrow_records br
        JOIN books b ON br.book_id = b.book_id
        WHERE br.user_id = $1
        ORDER BY br.record_id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]entity.HistoryRow, 0)
	for rows.Next() {
		var h entity.HistoryRow
		if err := rows.Scan(&h.BookName, &h.BorrowDate, &h.DueDate, &h.ReturnDate, &h.BookStatus); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// OutstandingByUser returns the user's unreturned loans.
func (r *RecordRepository) OutstandingByUser(userID int) ([]entity.OutstandingLoan, error) {
	rows, err := r.db.Query(`
        SELECT br.record_id, b.book_name, br.borrow_date, br.due_date
        FROM borrow_records br
        JOIN books b ON br.book_id = b.book_id
        WHERE br.user_id = $1 AND br.return_date IS NULL
        ORDER BY br.record_id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := make([]entity.OutstandingLoan, 0)
	for rows.Next() {
		var l entity.OutstandingLoan
		if err := rows.Scan(&l.RecordID, &l.BookName, &l.BorrowDate, &l.DueDate); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
