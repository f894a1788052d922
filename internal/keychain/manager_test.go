package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	m := NewManagerWithRing(keyring.NewArrayKeyring(nil))

	_, err := m.LoadSessionCookie()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SaveSessionCookie("abc.def.ghi"))
	got, err := m.LoadSessionCookie()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	require.NoError(t, m.ClearSessionCookie())
	_, err = m.LoadSessionCookie()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearSessionCookie_Idempotent(t *testing.T) {
	m := NewManagerWithRing(keyring.NewArrayKeyring(nil))
	require.NoError(t, m.ClearSessionCookie())
	require.NoError(t, m.ClearSessionCookie())
}
