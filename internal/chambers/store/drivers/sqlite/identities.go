package sqlite

import (
	"context"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store/drivers/sqlite/gen"
)

type identitiesRepo struct {
	q *gen.Queries
}

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	row, err := r.q.GetIdentityByID(ctx, id)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return mapIdentity(row), nil
}

func (r *identitiesRepo) GetIdentityByUsername(ctx context.Context, username string) (domain.Identity, error) {
	row, err := r.q.GetIdentityByUsername(ctx, username)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return mapIdentity(row), nil
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, i domain.Identity) error {
	err := r.q.CreateIdentity(ctx, gen.CreateIdentityParams{
		ID:           i.ID,
		Username:     i.Username,
		PasswordHash: i.PasswordHash,
		DisplayName:  i.DisplayName,
		Court:        i.Court,
		CreatedAt:    i.CreatedAt.UTC(),
		UpdatedAt:    i.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *identitiesRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *identitiesRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountIdentities(ctx)
}
