package utils

import (
	"context"
	"time"

	"monetizr/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitializeCampaignScheduler starts the campaign expiry sweep on schedule. An empty
// schedule disables it and returns nil.
func InitializeCampaignScheduler(schedule string, store *repository.Store) (*cron.Cron, error) {
	if schedule == "" {
		zap.L().Info("[CAMPAIGN-SCHEDULER] Disabled")
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := ExpireCampaigns(ctx, store); err != nil {
			zap.L().Error("[CAMPAIGN-SCHEDULER] Expiry sweep failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}

	c.Start()
	zap.L().Info("[CAMPAIGN-SCHEDULER] Started", zap.String("schedule", schedule))
	return c, nil
}

// ExpireCampaigns marks active campaigns whose expires_at has passed as completed.
func ExpireCampaigns(ctx context.Context, store *repository.Store) (int64, error) {
	expired, err := store.Campaigns.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		zap.L().Info("[CAMPAIGN-SCHEDULER] Expired campaigns", zap.Int64("count", expired))
	}
	return expired, nil
}
