package repository

import (
	"context"
	"time"

	"monetizr/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id string) (*models.CampaignView, error)
	// ListByCreator returns every campaign of the creator, newest first, with promotion counts.
	ListByCreator(ctx context.Context, creatorID string) ([]models.CampaignView, error)
	ListByStatus(ctx context.Context, status models.CampaignStatus) ([]models.CampaignView, error)
	// UpdateStatus replaces the status and reports whether the campaign exists.
	UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (bool, error)
	// ExpireDue completes active campaigns whose expiry is before now.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	CreatorStats(ctx context.Context, creatorID string, since time.Time) (CreatorStats, error)
}

type CreatorStats struct {
	TotalCampaigns   int64           `json:"total_campaigns"`
	ActiveCampaigns  int64           `json:"active_campaigns"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	CampaignsInRange int64           `json:"campaigns_this_month"`
}

type campaignRepository struct {
	db *gorm.DB
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) withCreator(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Joins("JOIN users ON users.id = campaigns.creator_id")
}

func (r *campaignRepository) FindByID(ctx context.Context, id string) (*models.CampaignView, error) {
	var view models.CampaignView
	err := r.withCreator(ctx).
		Select("campaigns.*, users.name AS creator_name").
		Where("campaigns.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &view, nil
}

func (r *campaignRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.CampaignView, error) {
	views := []models.CampaignView{}
	err := r.withCreator(ctx).
		Select("campaigns.*, users.name AS creator_name, COUNT(promotions.id) AS promotion_count").
		Joins("LEFT JOIN promotions ON promotions.campaign_id = campaigns.id").
		Where("campaigns.creator_id = ?", creatorID).
		Group("campaigns.id, users.name").
		Order("campaigns.created_at DESC").
		Find(&views).Error
	return views, err
}

func (r *campaignRepository) ListByStatus(ctx context.Context, status models.CampaignStatus) ([]models.CampaignView, error) {
	views := []models.CampaignView{}
	err := r.withCreator(ctx).
		Select("campaigns.*, users.name AS creator_name").
		Where("campaigns.status = ?", status).
		Order("campaigns.created_at DESC").
		Find(&views).Error
	return views, err
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *campaignRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.CampaignActive, now).
		Update("status", models.CampaignCompleted)
	return result.RowsAffected, result.Error
}

func (r *campaignRepository) CreatorStats(ctx context.Context, creatorID string, since time.Time) (CreatorStats, error) {
	var stats CreatorStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Campaign{}).
		Where("creator_id = ?", creatorID).
		Count(&stats.TotalCampaigns).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Campaign{}).
		Where("creator_id = ? AND status = ?", creatorID, models.CampaignActive).
		Count(&stats.ActiveCampaigns).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Campaign{}).
		Where("creator_id = ? AND created_at >= ?", creatorID, since).
		Count(&stats.CampaignsInRange).Error; err != nil {
		return stats, err
	}
	err := db.Model(&models.Campaign{}).
		Select("COALESCE(SUM(budget), 0)").
		Where("creator_id = ?", creatorID).
		Row().
		Scan(&stats.TotalBudget)
	return stats, err
}
