package chambersdk

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// expiryBuffer renews tokens this long before they actually expire.
const expiryBuffer = 30 * time.Second

// Session is an authenticated API session.
type Session struct {
	client *Client

	username string
	password string

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func newSession(c *Client, username, password string, tok *TokenResponse) *Session {
	s := &Session{client: c, username: username, password: password}
	s.store(tok)
	return s
}

func (s *Session) store(tok *TokenResponse) {
	s.accessToken = tok.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - expiryBuffer)
}

// validToken returns the current token, re-authenticating when it is stale.
func (s *Session) validToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	tok, err := s.client.RequestToken(ctx, s.username, s.password)
	if err != nil {
		return "", fmt.Errorf("failed to renew token: %w", err)
	}
	s.store(tok)
	return s.accessToken, nil
}

// AccessToken returns the current token without checking expiry.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ExpiresAt is when the session will next renew its token.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}
