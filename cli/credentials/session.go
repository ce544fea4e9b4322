/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials holds the session token for one server. The token is
// read before every request and dropped when the server answers 401 or the
// token's own expiry has passed.
package credentials

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/fields"
	"github.com/UnifyEM/DTConsole/common/hasher"
	"github.com/UnifyEM/DTConsole/common/interfaces"
	"github.com/UnifyEM/DTConsole/common/null"
)

var (
	_ dtrack.TokenSource     = (*Session)(nil)
	_ dtrack.SessionObserver = (*Session)(nil)
)

// Claims is what the CLI reads from a token without verifying it
type Claims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no expiry
}

// ParseClaims reads the subject and expiry from a JWT. The signature is not
// checked: only the server can do that.
func ParseClaims(token string) (Claims, error) {
	rc := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, rc); err != nil {
		return Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the claims carry an expiry that has passed
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type Session struct {
	mu     sync.Mutex
	store  Store
	server string
	token  string
	logger interfaces.Logger
	now    func() time.Time
}

// NewSession loads the token stored for server. A stored token that has
// expired is deleted.
func NewSession(store Store, server string, logger interfaces.Logger) (*Session, error) {
	if store == nil {
		return nil, errors.New("store is nil")
	}
	if logger == nil {
		logger = null.Logger()
	}

	s := &Session{store: store, server: server, logger: logger, now: time.Now}

	token, err := store.Load(server)
	switch {
	case errors.Is(err, ErrNoToken):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	s.token = token
	if s.expired(token) {
		logger.Info(3201, "stored token has expired", s.describe(token))
		if err = s.Forget(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Token returns the current token, or "" when there is none or it has expired
func (s *Session) Token() string {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" || s.expired(token) {
		return ""
	}
	return token
}

// Set stores a new token
func (s *Session) Set(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(s.server, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.token = token
	s.logger.Debug(3205, "token stored", s.describe(token))
	return nil
}

// Forget drops the token
func (s *Session) Forget() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := s.store.Delete(s.server); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Claims returns the claims of the current token
func (s *Session) Claims() (Claims, error) {
	token := s.Token()
	if token == "" {
		return Claims{}, ErrNoToken
	}
	return ParseClaims(token)
}

func (s *Session) Authenticated() {
	s.logger.Debug(3202, "session accepted", s.describe(s.Token()))
}

// Unauthenticated forgets the token after the server rejected it
func (s *Session) Unauthenticated() {
	token := s.Token()
	if token == "" {
		return
	}
	s.logger.Info(3203, "server rejected the session token", s.describe(token))
	if err := s.Forget(); err != nil {
		s.logger.Errorf(3204, "failed to forget token: %s", err.Error())
	}
}

// expired is true only for a parsable JWT whose expiry has passed. Tokens
// that are not JWTs are kept until the server rejects them.
func (s *Session) expired(token string) bool {
	c, err := ParseClaims(token)
	if err != nil {
		return false
	}
	return c.Expired(s.now())
}

// describe identifies a token in log lines by fingerprint, never by value
func (s *Session) describe(token string) *fields.Fields {
	return fields.NewFields(
		fields.NewField("server", s.server),
		fields.NewField("token", hasher.Fingerprint(token)))
}
