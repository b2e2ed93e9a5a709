package session

import (
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const cookieName = "library-session"

// Store wraps the cookie store with typed access to the few values the
// application keeps per browser session.
type Store struct {
	store *sessions.CookieStore
}

func NewStore(key string) *Store {
	secret := []byte(key)
	if len(secret) == 0 {
		// Without SESSION_KEY sessions do not survive a restart.
		secret = securecookie.GenerateRandomKey(32)
		log.Println("SESSION_KEY not set, using a random session key")
	}

	store := sessions.NewCookieStore(secret)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &Store{store: store}
}

// Session is the typed view of the cookie session. IsAdmin reflects the
// admin code submitted at login, not the stored role.
type Session struct {
	UserID  int
	Name    string
	Email   string
	IsAdmin bool
}

func (s Session) LoggedIn() bool { return s.UserID != 0 }

// Current decodes the session cookie; a missing or invalid cookie yields
// the zero Session.
func (st *Store) Current(r *http.Request) Session {
	sess, _ := st.store.Get(r, cookieName)

	cur := Session{}
	if v, ok := sess.Values["user_id"].(int); ok {
		cur.UserID = v
	}
	if v, ok := sess.Values["name"].(string); ok {
		cur.Name = v
	}
	if v, ok := sess.Values["email"].(string); ok {
		cur.Email = v
	}
	if v, ok := sess.Values["is_admin"].(bool); ok {
		cur.IsAdmin = v
	}
	return cur
}

// SignIn stores the identity in the session cookie.
func (st *Store) SignIn(w http.ResponseWriter, r *http.Request, cur Session) {
	sess, _ := st.store.Get(r, cookieName)
	sess.Values["user_id"] = cur.UserID
	sess.Values["name"] = cur.Name
	sess.Values["email"] = cur.Email
	sess.Values["is_admin"] = cur.IsAdmin
	if err := sess.Save(r, w); err != nil {
		log.Printf("save session: %v", err)
	}
}

// SignOut expires the session cookie.
func (st *Store) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := st.store.Get(r, cookieName)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		log.Printf("save session: %v", err)
	}
}

// Flash queues a one-time message under the given category
// ("error" or "success").
func (st *Store) Flash(w http.ResponseWriter, r *http.Request, category, message string) {
	sess, _ := st.store.Get(r, cookieName)
	sess.AddFlash(message, category)
	if err := sess.Save(r, w); err != nil {
		log.Printf("save session: %v", err)
	}
}

// Flashes drains the queued messages for the category.
func (st *Store) Flashes(w http.ResponseWriter, r *http.Request, category string) []string {
	sess, _ := st.store.Get(r, cookieName)
	raw := sess.Flashes(category)
	if len(raw) == 0 {
		return nil
	}
	// Flashes are consumed on read, so the cookie must be rewritten.
	if err := sess.Save(r, w); err != nil {
		log.Printf("save session: %v", err)
	}

	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
