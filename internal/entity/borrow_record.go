package entity

// BorrowRecord tracks which user holds which book and for how long.
// Dates pass through as strings exactly as submitted on the form.
// ReturnDate stays nil while the loan is outstanding.
type BorrowRecord struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	BookID     int     `json:"book_id"`
	BorrowDate string  `json:"borrow_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date,omitempty"`
}

// HistoryRow is one line of a user's borrow history joined with the book.
type HistoryRow struct {
	BookName   string
	BorrowDate string
	DueDate    string
	ReturnDate *string
	BookStatus string
}

// OutstandingLoan is an unreturned record joined with the book name.
type OutstandingLoan struct {
	RecordID   int
	BookName   string
	BorrowDate string
	DueDate    string
}
