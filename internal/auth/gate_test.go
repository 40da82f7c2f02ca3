package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/interview-deck/config"
)

var errDenied = errors.New("denied")

type stubAuthenticator struct {
	remote   bool
	passcode string
}

func (s stubAuthenticator) Remote() bool {
	return s.remote
}

func (s stubAuthenticator) Authenticate(ctx context.Context, passcode string) error {
	if !s.remote || passcode == s.passcode {
		return nil
	}
	return errDenied
}

func newTestGate(t *testing.T, remote bool) *Gate {
	t.Helper()

	cfg := config.Default().Admin
	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	g, err := NewGate(cfg, stubAuthenticator{remote: remote, passcode: "open-sesame"})
	require.NoError(t, err)
	return g
}

func requestWith(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/questions", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestGate_LocalMode(t *testing.T) {
	g := newTestGate(t, false)

	assert.True(t, g.LocalMode())
	assert.True(t, g.Authorized(requestWith(nil)))
}

func TestGate_Login(t *testing.T) {
	g := newTestGate(t, true)
	require.False(t, g.LocalMode())
	assert.False(t, g.Authorized(requestWith(nil)))

	t.Run("WrongPasscode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := g.Login(rec, requestWith(nil), "guess")
		assert.ErrorIs(t, err, errDenied)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, g.Login(rec, requestWith(nil), "open-sesame"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "interview_deck_admin", cookies[0].Name)
		assert.Zero(t, cookies[0].MaxAge)
		assert.True(t, cookies[0].Expires.IsZero(), "browser-session cookie")

		assert.True(t, g.Authorized(requestWith(cookies)))
	})

	t.Run("TamperedCookie", func(t *testing.T) {
		r := requestWith([]*http.Cookie{{Name: "interview_deck_admin", Value: "forged"}})
		assert.False(t, g.Authorized(r))
	})
}

func TestGate_SessionID(t *testing.T) {
	g := newTestGate(t, true)

	rec := httptest.NewRecorder()
	require.NoError(t, g.Login(rec, requestWith(nil), "open-sesame"))
	cookies := rec.Result().Cookies()

	first, err := g.SessionID(httptest.NewRecorder(), requestWith(cookies))
	require.NoError(t, err)
	second, err := g.SessionID(httptest.NewRecorder(), requestWith(cookies))
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)

	rec = httptest.NewRecorder()
	fresh, err := g.SessionID(rec, requestWith(nil))
	require.NoError(t, err)
	assert.NotEqual(t, first, fresh)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestGate_Logout(t *testing.T) {
	g := newTestGate(t, true)

	rec := httptest.NewRecorder()
	require.NoError(t, g.Login(rec, requestWith(nil), "open-sesame"))
	cookies := rec.Result().Cookies()
	id, err := g.SessionID(httptest.NewRecorder(), requestWith(cookies))
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	dropped, err := g.Logout(rec, requestWith(cookies))
	require.NoError(t, err)
	assert.Equal(t, id, dropped)

	expired := rec.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)
	assert.False(t, g.Authorized(requestWith(nil)))
}
