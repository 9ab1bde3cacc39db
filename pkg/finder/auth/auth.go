// Package auth implements the dashboard login gate: a single fixed
// credential pair checked at the door, and a session token issued on
// success. Credentials are injected at construction, never package-level
// state.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Credentials is the expected username/password pair.
type Credentials struct {
	Username string
	Password string
}

// Gate validates login attempts against one configured credential pair.
type Gate struct {
	creds   Credentials
	entropy *ulid.MonotonicEntropy
}

// NewGate creates a gate for the given credentials.
func NewGate(creds Credentials) *Gate {
	return &Gate{
		creds:   creds,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Validate reports whether the supplied credentials match the configured
// pair. Input is trimmed; empty usernames or passwords never validate.
// The comparison is constant-time.
func (g *Gate) Validate(username, password string) bool {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.creds.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.creds.Password))
	return userOK&passOK == 1
}

// ErrorMessage returns the user-facing message for a failed attempt.
func (g *Gate) ErrorMessage(username, password string) string {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	switch {
	case username == "" && password == "":
		return "Username and password are required."
	case username == "":
		return "Username is required."
	case password == "":
		return "Password is required."
	default:
		// Deliberately generic: do not reveal which part was wrong.
		return "Invalid username or password."
	}
}

// Session is the authenticated state handed back on a successful login.
type Session struct {
	Token         string
	Username      string
	Authenticated bool
	IssuedAt      time.Time
}

// Login validates the credentials and, on success, issues a session with
// a fresh ULID token. On failure it returns nil and false.
func (g *Gate) Login(username, password string) (*Session, bool) {
	if !g.Validate(username, password) {
		return nil, false
	}
	return &Session{
		Token:         ulid.MustNew(ulid.Now(), g.entropy).String(),
		Username:      strings.TrimSpace(username),
		Authenticated: true,
		IssuedAt:      time.Now(),
	}, true
}

// IsAuthenticated reports whether the session state represents a
// logged-in user. Nil sessions are unauthenticated.
func IsAuthenticated(s *Session) bool {
	return s != nil && s.Authenticated
}
