package sqlite

import (
	"context"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store/drivers/sqlite/gen"
)

type casesRepo struct {
	q *gen.Queries
}

func (r *casesRepo) CreateCase(ctx context.Context, c domain.Case) error {
	err := r.q.CreateCase(ctx, gen.CreateCaseParams{
		ID:           c.ID,
		JudgeID:      c.JudgeID,
		CaseNumber:   c.CaseNumber,
		CaseName:     c.CaseName,
		CaseCategory: c.CaseCategory,
		LegalSection: c.LegalSection,
		Parties:      c.Parties,
		Status:       c.Status,
		FilingDate:   c.FilingDate,
		NextHearing:  c.NextHearing,
		Description:  c.Description,
		CreatedAt:    c.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *casesRepo) GetCaseByID(ctx context.Context, id string) (domain.Case, error) {
	row, err := r.q.GetCaseByID(ctx, id)
	if err != nil {
		return domain.Case{}, mapNotFound(err)
	}
	return mapCase(caseRow(row)), nil
}

func (r *casesRepo) ListCasesByJudgeName(ctx context.Context, displayName string) ([]domain.Case, error) {
	rows, err := r.q.ListCasesByJudgeName(ctx, displayName)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Case, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCase(caseRow(row)))
	}
	return out, nil
}

func (r *casesRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountCases(ctx)
}
