package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/internal/chambers/store/drivers/sqlite"
	"github.com/aussiebroadwan/chambers/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "chambers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func createIdentity(t *testing.T, s store.Store, username, name string) domain.Identity {
	t.Helper()
	now := time.Now()
	i := domain.Identity{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "hash",
		DisplayName:  name,
		Court:        "Delhi High Court",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Identities().CreateIdentity(context.Background(), i))
	return i
}

func createCase(t *testing.T, s store.Store, id idx.ID, judgeID, number string) domain.Case {
	t.Helper()
	c := domain.Case{
		ID:         id.String(),
		JudgeID:    judgeID,
		CaseNumber: number,
		CaseName:   "Case " + number,
		Status:     "Filed",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, s.Cases().CreateCase(context.Background(), c))
	return c
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestIdentities(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	empty, err := s.Identities().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	judge := createIdentity(t, s, "judge1", "Justice Sharma")

	got, err := s.Identities().GetIdentityByUsername(ctx, "judge1")
	require.NoError(t, err)
	require.Equal(t, judge.ID, got.ID)
	require.Equal(t, "Justice Sharma", got.DisplayName)
	require.Equal(t, "Delhi High Court", got.Court)
	require.WithinDuration(t, judge.CreatedAt, got.CreatedAt, time.Second)

	got, err = s.Identities().GetIdentityByID(ctx, judge.ID)
	require.NoError(t, err)
	require.Equal(t, "judge1", got.Username)

	_, err = s.Identities().GetIdentityByUsername(ctx, "JUDGE1")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Identities().CreateIdentity(ctx, domain.Identity{
		ID:        idx.New().String(),
		Username:  "judge1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Identities().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestCasesFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	sharma := createIdentity(t, s, "judge1", "Justice Sharma")
	verma := createIdentity(t, s, "judge2", "Justice Verma")

	// The second case gets an older id than the first: listing follows
	// insertion, not id order.
	first := createCase(t, s, idx.New(), sharma.ID, "CRL/1")
	createCase(t, s, idx.New(), verma.ID, "CIVIL/1")
	second := createCase(t, s, idx.NewAt(time.Now().Add(-time.Hour)), sharma.ID, "CRL/2")

	list, err := s.Cases().ListCasesByJudgeName(ctx, "Justice Sharma")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, "Justice Sharma", list[0].Judge)

	none, err := s.Cases().ListCasesByJudgeName(ctx, "Nonexistent Judge")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	none, err = s.Cases().ListCasesByJudgeName(ctx, "justice sharma")
	require.NoError(t, err)
	require.Empty(t, none)

	got, err := s.Cases().GetCaseByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, "CRL/2", got.CaseNumber)
	require.Equal(t, sharma.ID, got.JudgeID)

	_, err = s.Cases().GetCaseByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCaseRequiresExistingJudge(t *testing.T) {
	s := newStore(t)

	err := s.Cases().CreateCase(context.Background(), domain.Case{
		ID:        idx.New().String(),
		JudgeID:   idx.New().String(),
		CreatedAt: time.Now(),
	})
	require.Error(t, err)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	judge := createIdentity(t, s, "judge1", "Justice Sharma")
	now := time.Now()

	live := domain.Session{
		ID: idx.New().String(), TokenHash: "live", IdentityID: judge.ID,
		UserAgent: "test", IPAddress: "127.0.0.1",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}
	stale := domain.Session{
		ID: idx.New().String(), TokenHash: "stale", IdentityID: judge.ID,
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, live))
	require.NoError(t, s.Sessions().CreateSession(ctx, stale))

	got, err := s.Sessions().GetSessionByTokenHash(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, judge.ID, got.IdentityID)
	require.Equal(t, "127.0.0.1", got.IPAddress)
	require.WithinDuration(t, live.ExpiresAt, got.ExpiresAt, time.Second)

	n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Sessions().GetSessionByTokenHash(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Sessions().DeleteSessionByTokenHash(ctx, "live"))
	require.NoError(t, s.Sessions().DeleteSessionByTokenHash(ctx, "live"))

	_, err = s.Sessions().GetSessionByTokenHash(ctx, "live")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now()
		if err := tx.Identities().CreateIdentity(ctx, domain.Identity{
			ID: idx.New().String(), Username: "judge1", CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			return err
		}
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	empty, err := s.Identities().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)
}
