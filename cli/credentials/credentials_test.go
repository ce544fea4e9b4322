/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package credentials

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/DTConsole/common/hasher"
	"github.com/UnifyEM/DTConsole/common/ulogger"
)

const server = "https://dt.example.com/api"

func token(t *testing.T, subject string, life time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(life)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestStores(t *testing.T) {
	fs, err := OpenFile(filepath.Join(t.TempDir(), "nested", "session.db"))
	require.NoError(t, err)
	defer func() { _ = fs.Close() }()

	for name, store := range map[string]Store{"memory": NewMemoryStore(), "file": fs} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(server)
			assert.ErrorIs(t, err, ErrNoToken)

			require.NoError(t, store.Save(server, "one"))
			require.NoError(t, store.Save("http://other/api", "two"))
			got, err := store.Load(server)
			require.NoError(t, err)
			assert.Equal(t, "one", got)

			require.NoError(t, store.Delete(server))
			_, err = store.Load(server)
			assert.ErrorIs(t, err, ErrNoToken)
			got, err = store.Load("http://other/api")
			require.NoError(t, err)
			assert.Equal(t, "two", got)
		})
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	fs, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, fs.Save(server, "persisted"))
	require.NoError(t, fs.Close())

	fs, err = OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = fs.Close() }()
	got, err := fs.Load(server)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestParseClaims(t *testing.T) {
	c, err := ParseClaims(token(t, "admin", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "admin", c.Subject)
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(time.Now().Add(2*time.Hour)))

	_, err = ParseClaims("not-a-jwt")
	assert.Error(t, err)

	assert.False(t, Claims{}.Expired(time.Now()))
}

func TestSessionLifecycle(t *testing.T) {
	store := NewMemoryStore()
	s, err := NewSession(store, server, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s.Token())

	_, err = s.Claims()
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Error(t, s.Set(""))

	tok := token(t, "admin", time.Hour)
	require.NoError(t, s.Set(tok))
	assert.Equal(t, tok, s.Token())
	c, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "admin", c.Subject)

	// A second session for the same server sees the stored token
	s2, err := NewSession(store, server, nil)
	require.NoError(t, err)
	assert.Equal(t, tok, s2.Token())

	require.NoError(t, s.Forget())
	assert.Equal(t, "", s.Token())
	_, err = store.Load(server)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestExpiredTokenIsAbsent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(server, token(t, "admin", -time.Minute)))

	s, err := NewSession(store, server, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s.Token())
	_, err = store.Load(server)
	assert.ErrorIs(t, err, ErrNoToken)

	// A token that expires while held stops being sent
	tok := token(t, "admin", time.Hour)
	require.NoError(t, s.Set(tok))
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, "", s.Token())
}

func TestOpaqueTokenKept(t *testing.T) {
	s, err := NewSession(NewMemoryStore(), server, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set("opaque-api-key"))
	assert.Equal(t, "opaque-api-key", s.Token())
}

func TestObserver(t *testing.T) {
	store := NewMemoryStore()
	s, err := NewSession(store, server, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(token(t, "admin", time.Hour)))

	s.Authenticated()
	assert.NotEmpty(t, s.Token())

	s.Unauthenticated()
	assert.Equal(t, "", s.Token())
	_, err = store.Load(server)
	assert.ErrorIs(t, err, ErrNoToken)

	// Nothing left to forget
	assert.NotPanics(t, s.Unauthenticated)
}

func TestNewSessionRequiresStore(t *testing.T) {
	_, err := NewSession(nil, server, nil)
	assert.Error(t, err)
}

func TestTokenNeverLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ulogger.New(ulogger.WithWriter(&buf), ulogger.WithDebug(true))
	require.NoError(t, err)

	s, err := NewSession(NewMemoryStore(), server, logger)
	require.NoError(t, err)
	tok := token(t, "admin", time.Hour)
	require.NoError(t, s.Set(tok))
	s.Authenticated()
	s.Unauthenticated()

	assert.NotContains(t, buf.String(), tok)
	assert.Contains(t, buf.String(), hasher.Fingerprint(tok))
}
