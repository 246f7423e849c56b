package session

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/sessions"
	"github.com/marjuksajid/SkillChronicle/internal/model"
)

const (
	sessionName = "skillchronicle_session"

	keyUserID   = "user_id"
	keyUsername = "username"
)

// Manager wraps a file-backed session store. Session state lives on the
// server; the cookie carries only an opaque session identifier.
type Manager struct {
	store *sessions.FilesystemStore
}

func NewManager(secret, dir string, maxAge time.Duration, secure bool) (*Manager, error) {
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	store := sessions.NewFilesystemStore(dir, []byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}, nil
}

// SignIn stores the user's identity in the session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, user *model.User) error {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes to an error but still yields
		// a fresh session; proceed with that.
		sess, _ = m.store.New(r, sessionName)
	}

	sess.Values[keyUserID] = user.ID
	sess.Values[keyUsername] = user.Username

	return sess.Save(r, w)
}

// SignOut clears the session state and expires the cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		sess, _ = m.store.New(r, sessionName)
	}

	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1

	return sess.Save(r, w)
}

// UserID returns the authenticated user's id, if any.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}

	id, ok := sess.Values[keyUserID].(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// Username returns the authenticated user's username, if any.
func (m *Manager) Username(r *http.Request) (string, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}

	name, ok := sess.Values[keyUsername].(string)
	if !ok || name == "" {
		return "", false
	}

	return name, true
}
