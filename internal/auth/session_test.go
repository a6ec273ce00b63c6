package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedesk/v2/internal/types"
)

type memStore struct {
	token string
	user  *types.User
}

func (m *memStore) SaveSession(token string, user types.User) error {
	m.token = token
	m.user = &user
	return nil
}

func (m *memStore) LoadSession() (string, *types.User, error) {
	return m.token, m.user, nil
}

func (m *memStore) ClearSession() error {
	m.token = ""
	m.user = nil
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_BeginPersistsAndEndWipes(t *testing.T) {
	store := &memStore{}
	session := NewSession(store)

	assert.False(t, session.LoggedIn())

	user := types.User{ID: 1, Name: "Asha", Email: "asha@example.com"}
	session.Begin("tok-123", user)

	assert.True(t, session.LoggedIn())
	assert.Equal(t, "tok-123", session.Token())
	require.NotNil(t, session.User())
	assert.Equal(t, "Asha", session.User().Name)
	assert.Equal(t, "tok-123", store.token)

	session.End()
	assert.False(t, session.LoggedIn())
	assert.Nil(t, session.User())
	assert.Empty(t, store.token)
}

func TestSession_EndIsIdempotent(t *testing.T) {
	session := NewSession(&memStore{})
	session.Begin("tok", types.User{ID: 1})
	session.End()
	session.End()
	assert.False(t, session.LoggedIn())
}

func TestSession_RestoreLiveToken(t *testing.T) {
	store := &memStore{
		token: signedToken(t, time.Now().Add(time.Hour)),
		user:  &types.User{ID: 2, Name: "Ravi"},
	}
	session := NewSession(store)

	assert.True(t, session.Restore())
	assert.True(t, session.LoggedIn())
	require.NotNil(t, session.User())
	assert.Equal(t, "Ravi", session.User().Name)
}

func TestSession_RestoreDropsExpiredToken(t *testing.T) {
	store := &memStore{
		token: signedToken(t, time.Now().Add(-time.Hour)),
		user:  &types.User{ID: 2},
	}
	session := NewSession(store)

	assert.False(t, session.Restore())
	assert.False(t, session.LoggedIn())
	// The stale session is gone from disk too, not just from memory.
	assert.Empty(t, store.token)
}

func TestSession_RestoreEmptyStore(t *testing.T) {
	session := NewSession(&memStore{})
	assert.False(t, session.Restore())
}

func TestSession_SetUserKeepsToken(t *testing.T) {
	store := &memStore{}
	session := NewSession(store)
	session.Begin("tok", types.User{ID: 1, Name: "Before"})

	session.SetUser(types.User{ID: 1, Name: "After"})

	assert.Equal(t, "tok", session.Token())
	assert.Equal(t, "After", session.User().Name)
	require.NotNil(t, store.user)
	assert.Equal(t, "After", store.user.Name)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Minute))))
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Minute))))
	// Opaque tokens are left for the server to judge.
	assert.False(t, tokenExpired("not-a-jwt"))
}
