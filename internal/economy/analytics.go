package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Analytics returns spin statistics while the player holds analytics access
func (s *service) Analytics(ctx context.Context, playerID string) (*domain.PlayerAnalytics, error) {
	access, err := s.effects.Active(ctx, playerID, domain.EffectAnalyticsAccess)
	if err != nil {
		return nil, err
	}
	if access == nil {
		return nil, fmt.Errorf("%w: use an analytics pass first", domain.ErrAnalyticsLocked)
	}

	byMachine, err := s.repos.SpinLog.GetSpinStats(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAnalyticsFailed, err)
	}

	report := &domain.PlayerAnalytics{
		PlayerID:        playerID,
		ByMachine:       byMachine,
		AccessExpiresAt: access.ExpiresAt,
	}
	for _, stats := range byMachine {
		report.Overall.Merge(stats)
	}
	return report, nil
}
