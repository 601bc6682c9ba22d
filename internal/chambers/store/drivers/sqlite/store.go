package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/internal/chambers/store/drivers/sqlite/gen"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at path. Every pooled connection gets foreign
// keys enabled and writes timestamps in the sortable sqlite format, which the
// expiry queries compare lexically.
func NewStore(path string) (*Store, error) {
	dsn := buildDSN(path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func buildDSN(path string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return "file:" + path + "?" + params
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Identities() store.Identities { return &identitiesRepo{q: s.q} }
func (s *Store) Cases() store.Cases           { return &casesRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions     { return &sessionsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a UNIQUE or PRIMARY KEY violation into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func mapIdentity(row gen.Identity) domain.Identity {
	return domain.Identity{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		DisplayName:  row.DisplayName,
		Court:        row.Court,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapSession(row gen.Session) domain.Session {
	return domain.Session{
		ID:         row.ID,
		TokenHash:  row.TokenHash,
		IdentityID: row.IdentityID,
		UserAgent:  row.UserAgent,
		IPAddress:  row.IpAddress,
		CreatedAt:  row.CreatedAt,
		ExpiresAt:  row.ExpiresAt,
	}
}

// caseRow is the shape shared by the case queries that join the judge name.
type caseRow gen.GetCaseByIDRow

func mapCase(row caseRow) domain.Case {
	return domain.Case{
		ID:           row.ID,
		JudgeID:      row.JudgeID,
		Judge:        row.Judge,
		CaseNumber:   row.CaseNumber,
		CaseName:     row.CaseName,
		CaseCategory: row.CaseCategory,
		LegalSection: row.LegalSection,
		Parties:      row.Parties,
		Status:       row.Status,
		FilingDate:   row.FilingDate,
		NextHearing:  row.NextHearing,
		Description:  row.Description,
		CreatedAt:    row.CreatedAt,
	}
}
