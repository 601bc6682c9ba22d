package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Repositories hang off it so that
// a Tx exposes exactly the same surface.
type Store interface {
	Identities() Identities
	Cases() Cases
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)

	// GetIdentityByUsername is an exact, case-sensitive match.
	GetIdentityByUsername(ctx context.Context, username string) (domain.Identity, error)

	// CreateIdentity returns ErrAlreadyExists when the username is taken.
	CreateIdentity(ctx context.Context, i domain.Identity) error

	IsEmpty(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type Cases interface {
	// CreateCase inserts c. JudgeID must reference an existing identity.
	CreateCase(ctx context.Context, c domain.Case) error

	GetCaseByID(ctx context.Context, id string) (domain.Case, error)

	// ListCasesByJudgeName returns the cases assigned to the identity with
	// the given display name, in insertion order. Never nil.
	ListCasesByJudgeName(ctx context.Context, displayName string) ([]domain.Case, error)

	Count(ctx context.Context) (int64, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash does not filter on expiry; callers decide.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// DeleteSessionByTokenHash is a no-op for unknown hashes.
	DeleteSessionByTokenHash(ctx context.Context, hash string) error

	// DeleteExpiredSessions removes sessions expired at or before now and
	// returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
