package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/cryptox"
	"github.com/aussiebroadwan/chambers/pkg/idx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

const DefaultSessionTTL = 12 * time.Hour

// SessionService checks credentials and tracks which identity a browser
// session belongs to. It only ever writes the sessions table.
type SessionService struct {
	Store store.Store
	TTL   time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

// AuthResult is a freshly created session. Token is the raw cookie value and
// is not recoverable from the store.
type AuthResult struct {
	Identity  domain.Identity
	Token     string
	ExpiresAt time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// VerifyCredentials returns the identity matching the pair. Unknown usernames
// pay for one hash so both failure paths take the same time.
func (s *SessionService) VerifyCredentials(ctx context.Context, username, password string) (domain.Identity, error) {
	ident, err := s.Store.Identities().GetIdentityByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		cryptox.BurnVerify(password)
		return domain.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("lookup identity: %w", err)
	}

	if err := cryptox.VerifyPassword(password, ident.PasswordHash); err != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return ident, nil
}

// Authenticate verifies the pair and opens a session for it. A failed attempt
// creates nothing.
func (s *SessionService) Authenticate(
	ctx context.Context,
	username, password string,
	meta domain.SessionMeta,
) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	ident, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			l.Info("login failed", slog.String("username", username))
		}
		return AuthResult{}, err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return AuthResult{}, err
	}

	now := s.now()
	sess := domain.Session{
		ID:         idx.New().String(),
		TokenHash:  cryptox.FingerprintToken(token),
		IdentityID: ident.ID,
		UserAgent:  meta.UserAgent,
		IPAddress:  meta.IPAddress,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return AuthResult{}, fmt.Errorf("create session: %w", err)
	}

	l.Info("login succeeded",
		slog.String("identity_id", ident.ID),
		slog.String("session_id", sess.ID),
	)

	return AuthResult{Identity: ident, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

// CurrentIdentity resolves the identity behind a session token.
func (s *SessionService) CurrentIdentity(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, ErrUnauthenticated
	}

	sess, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("lookup session: %w", err)
	}

	if sess.IsExpired(s.now()) {
		return domain.Identity{}, ErrUnauthenticated
	}

	ident, err := s.Store.Identities().GetIdentityByID(ctx, sess.IdentityID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("lookup identity: %w", err)
	}
	return ident, nil
}

// EndSession forgets the session. Unknown or empty tokens are not an error.
func (s *SessionService) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
}

// PurgeExpired deletes every session that has lapsed.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.Store.Sessions().DeleteExpiredSessions(ctx, s.now())
}
