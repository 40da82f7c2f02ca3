package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/daniilsolovey/interview-deck/config"
)

const (
	keyAuthenticated = "authenticated"
	keySessionID     = "sid"
)

// Authenticator checks admin passcodes. Without a remote store every request is
// treated as authenticated.
type Authenticator interface {
	Remote() bool
	Authenticate(ctx context.Context, passcode string) error
}

// Gate keeps the admin flag and workspace id in a browser-session cookie.
type Gate struct {
	store *sessions.CookieStore
	name  string
	auth  Authenticator
}

// NewGate creates a gate. An empty session secret is replaced with a random key,
// which invalidates all sessions on restart.
func NewGate(cfg config.Admin, auth Authenticator) (*Gate, error) {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		if secret == nil {
			return nil, errors.New("failed to generate session secret")
		}
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// no Max-Age: the cookie lives as long as the browser session
	store.MaxAge(0)

	return &Gate{
		store: store,
		name:  cfg.SessionName,
		auth:  auth,
	}, nil
}

// LocalMode reports whether access is granted without a passcode.
func (g *Gate) LocalMode() bool {
	return !g.auth.Remote()
}

func (g *Gate) Authorized(r *http.Request) bool {
	if g.LocalMode() {
		return true
	}

	session, err := g.store.Get(r, g.name)
	if err != nil {
		return false
	}

	ok, _ := session.Values[keyAuthenticated].(bool)
	return ok
}

// Login marks the session authenticated when passcode is accepted. The
// authenticator's error is returned unchanged otherwise.
func (g *Gate) Login(w http.ResponseWriter, r *http.Request, passcode string) error {
	if err := g.auth.Authenticate(r.Context(), passcode); err != nil {
		return err
	}

	session := g.session(r)
	session.Values[keyAuthenticated] = true
	ensureID(session)

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// SessionID returns the id the admin workspace is stored under, creating it on first use.
func (g *Gate) SessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	session := g.session(r)
	if id, ok := session.Values[keySessionID].(string); ok && id != "" {
		return id, nil
	}

	id := ensureID(session)
	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return id, nil
}

// Logout expires the cookie and returns the session id it carried, if any.
func (g *Gate) Logout(w http.ResponseWriter, r *http.Request) (string, error) {
	session := g.session(r)
	id, _ := session.Values[keySessionID].(string)

	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return id, fmt.Errorf("save session: %w", err)
	}

	return id, nil
}

// session never fails: a cookie that cannot be decoded yields a fresh session.
func (g *Gate) session(r *http.Request) *sessions.Session {
	session, err := g.store.Get(r, g.name)
	if err != nil || session == nil {
		session = sessions.NewSession(g.store, g.name)
		opts := *g.store.Options
		session.Options = &opts
		session.IsNew = true
	}
	return session
}

func ensureID(session *sessions.Session) string {
	if id, ok := session.Values[keySessionID].(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	session.Values[keySessionID] = id
	return id
}
