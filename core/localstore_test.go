package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedesk/v2/internal/types"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store := NewLocalStore(t.TempDir(), "test.db")
	require.NoError(t, store.Connect())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLocalStore_SaveAndLoadSession(t *testing.T) {
	store := newTestStore(t)

	user := types.User{ID: 5, Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, store.SaveSession("tok-123", user))

	token, loaded, err := store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, loaded)
	assert.Equal(t, user, *loaded)
}

func TestLocalStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	token, user, err := store.LoadSession()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLocalStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveSession("first", types.User{ID: 1, Name: "A"}))
	require.NoError(t, store.SaveSession("second", types.User{ID: 2, Name: "B"}))

	token, user, err := store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
	require.NotNil(t, user)
	assert.Equal(t, 2, user.ID)
}

func TestLocalStore_ClearSession(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveSession("tok", types.User{ID: 1}))
	require.NoError(t, store.ClearSession())

	token, user, err := store.LoadSession()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}
