package handler

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"libraryapp/internal/session"
)

const testAdminCode = "8111"

// testSchema mirrors the Postgres migration on sqlite.
const testSchema = `
CREATE TABLE users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    manager_role_level INTEGER,
    student_grade_level INTEGER
);

CREATE TABLE books (
    book_id INTEGER PRIMARY KEY AUTOINCREMENT,
    book_name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    condition TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'Available'
);

CREATE TABLE borrow_records (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users (user_id),
    book_id INTEGER NOT NULL REFERENCES books (book_id),
    borrow_date TEXT NOT NULL,
    due_date TEXT NOT NULL,
    return_date TEXT
);
`

type testApp struct {
	server *httptest.Server
	db     *sql.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	sessions := session.NewStore("handler-test-key")
	h := New(db, sessions, testAdminCode)

	server := httptest.NewServer(h.Router(false))
	t.Cleanup(server.Close)

	return &testApp{server: server, db: db}
}

// newClient returns a browser-like client: it keeps cookies but does
// not follow redirects, so tests can assert on Location headers.
func (a *testApp) newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) login(t *testing.T, client *http.Client, name, email, adminKey string) *http.Response {
	t.Helper()

	form := url.Values{
		"name":      {name},
		"email":     {email},
		"admin_key": {adminKey},
	}
	resp, err := client.PostForm(a.server.URL+"/login", form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func (a *testApp) postForm(t *testing.T, client *http.Client, path string, form url.Values) *http.Response {
	t.Helper()

	resp, err := client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func (a *testApp) get(t *testing.T, client *http.Client, path string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (a *testApp) addBook(t *testing.T, name, status string) int {
	t.Helper()

	var id int
	err := a.db.QueryRow(`
        INSERT INTO books (book_name, category, condition, status)
        VALUES ($1, 'Sci-Fi', 'Good', $2)
        RETURNING book_id
    `, name, status).Scan(&id)
	require.NoError(t, err)
	return id
}
