package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/cryptox"
	"github.com/aussiebroadwan/chambers/pkg/idx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

type BootstrapService struct {
	Store store.Store
}

// IsSeeded reports whether any identity exists.
func (s *BootstrapService) IsSeeded(ctx context.Context) (bool, error) {
	empty, err := s.Store.Identities().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Seed loads data into an empty database in one transaction. It returns
// ErrAlreadySeeded, and writes nothing, once any identity exists.
func (s *BootstrapService) Seed(ctx context.Context, data domain.SeedData) error {
	l := slogx.FromContext(ctx)

	seeded, err := s.IsSeeded(ctx)
	if err != nil {
		return err
	}
	if seeded {
		return ErrAlreadySeeded
	}

	hash, err := cryptox.HashPassword(data.Password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	judge := domain.Identity{
		ID:           idx.New().String(),
		Username:     data.Username,
		PasswordHash: hash,
		DisplayName:  data.DisplayName,
		Court:        data.Court,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check inside the transaction; another process may have seeded.
		empty, err := tx.Identities().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrAlreadySeeded
		}

		if err := tx.Identities().CreateIdentity(ctx, judge); err != nil {
			return fmt.Errorf("create seed identity: %w", err)
		}

		for _, sc := range data.Cases {
			c := domain.Case{
				ID:           idx.New().String(),
				JudgeID:      judge.ID,
				CaseNumber:   sc.CaseNumber,
				CaseName:     sc.CaseName,
				CaseCategory: sc.CaseCategory,
				LegalSection: sc.LegalSection,
				Parties:      sc.Parties,
				Status:       sc.Status,
				FilingDate:   sc.FilingDate,
				NextHearing:  sc.NextHearing,
				Description:  sc.Description,
				CreatedAt:    now,
			}
			if err := tx.Cases().CreateCase(ctx, c); err != nil {
				l.Error("failed to create seed case",
					slog.String("case_number", sc.CaseNumber),
					slog.Any("error", err),
				)
				return fmt.Errorf("create seed case %s: %w", sc.CaseNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("database seeded",
		slog.String("identity_id", judge.ID),
		slog.String("username", judge.Username),
		slog.Int("cases", len(data.Cases)),
	)
	return nil
}
