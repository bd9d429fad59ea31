package visitor

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName       = "checkers_session"
	VisitorIDKey      = "visitor_id"
	SessionCreatedKey = "created_at"
)

var (
	ErrNoVisitor = errors.New("no visitor session")
)

// SessionManager issues every browser a stable visitor ID in a signed cookie.
// The ID keys the visitor's UI state; nothing else is stored in the cookie.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		secret = generateSecret()
	}
	return &SessionManager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// EnsureVisitor returns the request's visitor ID, issuing and saving a new one
// when the cookie is missing or cannot be decoded.
func (sm *SessionManager) EnsureVisitor(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, err := sm.GetVisitorID(r); err == nil {
		return id, nil
	}

	id := uuid.NewString()

	// A cookie signed with another secret fails to decode; Get still returns
	// a usable fresh session alongside the error.
	session, _ := sm.store.Get(r, SessionName)
	session.Values[VisitorIDKey] = id
	session.Values[SessionCreatedKey] = time.Now().Unix()

	// Determine if we're on HTTPS
	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}

	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

func (sm *SessionManager) GetVisitorID(r *http.Request) (string, error) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return "", err
	}

	val, ok := session.Values[VisitorIDKey]
	if !ok {
		return "", ErrNoVisitor
	}

	id, ok := val.(string)
	if !ok || id == "" {
		return "", ErrNoVisitor
	}

	return id, nil
}
