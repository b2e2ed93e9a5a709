package handler

import (
	"database/sql"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapp/internal/entity"
)

func TestBorrowFlow(t *testing.T) {
	app := newTestApp(t)
	client := app.newClient(t)
	app.login(t, client, "Bob", "bob@x.com", "")

	bookID := app.addBook(t, "Dune", entity.StatusAvailable)

	_, body := app.get(t, client, "/borrow")
	assert.Contains(t, body, "Dune")

	resp := app.postForm(t, client, "/borrow", url.Values{
		"book_id":     {strconv.Itoa(bookID)},
		"borrow_date": {"2024-01-01"},
		"due_date":    {"2024-01-15"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user_dashboard", resp.Header.Get("Location"))

	var status string
	require.NoError(t, app.db.QueryRow(`SELECT status FROM books WHERE book_id = $1`, bookID).Scan(&status))
	assert.Equal(t, entity.StatusBorrowed, status)

	var borrowDate, dueDate string
	var returnDate sql.NullString
	err := app.db.QueryRow(`
        SELECT borrow_date, due_date, return_date FROM borrow_records WHERE book_id = $1
    `, bookID).Scan(&borrowDate, &dueDate, &returnDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", borrowDate)
	assert.Equal(t, "2024-01-15", dueDate)
	assert.False(t, returnDate.Valid)

	_, body = app.get(t, client, "/user_dashboard")
	assert.Contains(t, body, "Book borrowed successfully!")
	assert.Contains(t, body, "Dune")

	// A borrowed book is gone from the listing and cannot be taken again.
	_, body = app.get(t, client, "/borrow")
	assert.NotContains(t, body, "Dune")

	resp = app.postForm(t, client, "/borrow", url.Values{
		"book_id":     {strconv.Itoa(bookID)},
		"borrow_date": {"2024-01-02"},
		"due_date":    {"2024-01-16"},
	})
	assert.Equal(t, "/borrow", resp.Header.Get("Location"))

	_, body = app.get(t, client, "/borrow")
	assert.Contains(t, body, "This book is not available for borrowing.")
}

func TestReturnFlow(t *testing.T) {
	app := newTestApp(t)
	client := app.newClient(t)
	app.login(t, client, "Bob", "bob@x.com", "")

	bookID := app.addBook(t, "Dune", entity.StatusAvailable)
	app.postForm(t, client, "/borrow", url.Values{
		"book_id":     {strconv.Itoa(bookID)},
		"borrow_date": {"2024-01-01"},
		"due_date":    {"2024-01-15"},
	})

	_, body := app.get(t, client, "/return")
	assert.Contains(t, body, "Dune")

	var recordID int
	require.NoError(t, app.db.QueryRow(`SELECT record_id FROM borrow_records WHERE book_id = $1`, bookID).Scan(&recordID))

	resp := app.postForm(t, client, "/return", url.Values{
		"record_id":   {strconv.Itoa(recordID)},
		"return_date": {"2024-01-10"},
	})
	assert.Equal(t, "/user_dashboard", resp.Header.Get("Location"))

	var status string
	require.NoError(t, app.db.QueryRow(`SELECT status FROM books WHERE book_id = $1`, bookID).Scan(&status))
	assert.Equal(t, entity.StatusAvailable, status)

	var returnDate sql.NullString
	require.NoError(t, app.db.QueryRow(`SELECT return_date FROM borrow_records WHERE record_id = $1`, recordID).Scan(&returnDate))
	require.True(t, returnDate.Valid)
	assert.Equal(t, "2024-01-10", returnDate.String)

	// Returning the same record again is a no-op with a message.
	resp = app.postForm(t, client, "/return", url.Values{
		"record_id":   {strconv.Itoa(recordID)},
		"return_date": {"2024-01-11"},
	})
	assert.Equal(t, "/return", resp.Header.Get("Location"))

	_, body = app.get(t, client, "/return")
	assert.Contains(t, body, "No outstanding borrow record was found.")
}

func TestReturnIsScopedToTheSession(t *testing.T) {
	app := newTestApp(t)

	bob := app.newClient(t)
	app.login(t, bob, "Bob", "bob@x.com", "")
	bookID := app.addBook(t, "Dune", entity.StatusAvailable)
	app.postForm(t, bob, "/borrow", url.Values{
		"book_id":     {strconv.Itoa(bookID)},
		"borrow_date": {"2024-01-01"},
		"due_date":    {"2024-01-15"},
	})

	var recordID int
	require.NoError(t, app.db.QueryRow(`SELECT record_id FROM borrow_records WHERE book_id = $1`, bookID).Scan(&recordID))

	eve := app.newClient(t)
	app.login(t, eve, "Eve", "eve@x.com", "")
	resp := app.postForm(t, eve, "/return", url.Values{
		"record_id":   {strconv.Itoa(recordID)},
		"return_date": {"2024-01-10"},
	})
	assert.Equal(t, "/return", resp.Header.Get("Location"))

	var status string
	require.NoError(t, app.db.QueryRow(`SELECT status FROM books WHERE book_id = $1`, bookID).Scan(&status))
	assert.Equal(t, entity.StatusBorrowed, status)
}
