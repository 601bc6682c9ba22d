package domain

import "time"

// Session binds a browser cookie to an identity. Only the fingerprint of the
// cookie token is stored.
type Session struct {
	ID         string
	TokenHash  string
	IdentityID string
	UserAgent  string
	IPAddress  string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// IsExpired reports whether the session has lapsed at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionMeta is the client information recorded with a new session.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}
