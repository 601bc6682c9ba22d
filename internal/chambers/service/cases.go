package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/idx"
)

type CaseService struct {
	Store  store.Store
	Policy domain.AccessPolicy
}

// ListForJudge returns the cases assigned to the judge with displayName,
// matched exactly, in insertion order.
func (s *CaseService) ListForJudge(ctx context.Context, displayName string) ([]domain.Case, error) {
	return s.Store.Cases().ListCasesByJudgeName(ctx, displayName)
}

// GetByID returns one case. Ids that are not ULIDs cannot exist and answer
// ErrCaseNotFound without a query.
func (s *CaseService) GetByID(ctx context.Context, caseID string) (domain.Case, error) {
	id, err := idx.Parse(caseID)
	if err != nil {
		return domain.Case{}, ErrCaseNotFound
	}

	c, err := s.Store.Cases().GetCaseByID(ctx, id.String())
	if errors.Is(err, store.ErrNotFound) {
		return domain.Case{}, ErrCaseNotFound
	}
	return c, err
}

// GetForIdentity is GetByID filtered by the access policy. A case the viewer
// may not see is reported as not found.
func (s *CaseService) GetForIdentity(ctx context.Context, viewer domain.Identity, caseID string) (domain.Case, error) {
	c, err := s.GetByID(ctx, caseID)
	if err != nil {
		return domain.Case{}, err
	}
	if !s.Policy.CanView(viewer, c) {
		return domain.Case{}, ErrCaseNotFound
	}
	return c, nil
}
