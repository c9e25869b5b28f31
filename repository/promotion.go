package repository

import (
	"context"
	"errors"

	"monetizr/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PromotionRepository interface {
	// Create stores a promotion. A promoter joins a campaign at most once.
	Create(ctx context.Context, promotion *models.Promotion) error
	ListByPromoter(ctx context.Context, promoterID string) ([]models.PromotionView, error)
	PromoterStats(ctx context.Context, promoterID string) (PromoterStats, error)
}

type PromoterStats struct {
	ActivePromotions int64           `json:"active_promotions"`
	TotalViews       int64           `json:"total_views"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
}

type promotionRepository struct {
	db *gorm.DB
}

func (r *promotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	err := r.db.WithContext(ctx).Create(promotion).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePromotion
	}
	return err
}

func (r *promotionRepository) ListByPromoter(ctx context.Context, promoterID string) ([]models.PromotionView, error) {
	views := []models.PromotionView{}
	err := r.db.WithContext(ctx).
		Model(&models.Promotion{}).
		Select("promotions.*, campaigns.title AS campaign_title").
		Joins("JOIN campaigns ON campaigns.id = promotions.campaign_id").
		Where("promotions.promoter_id = ?", promoterID).
		Order("promotions.created_at DESC").
		Find(&views).Error
	return views, err
}

func (r *promotionRepository) PromoterStats(ctx context.Context, promoterID string) (PromoterStats, error) {
	var stats PromoterStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Promotion{}).
		Where("promoter_id = ? AND status = ?", promoterID, models.PromotionActive).
		Count(&stats.ActivePromotions).Error; err != nil {
		return stats, err
	}
	err := db.Model(&models.Promotion{}).
		Select("COALESCE(SUM(views_count), 0), COALESCE(SUM(earnings), 0)").
		Where("promoter_id = ?", promoterID).
		Row().
		Scan(&stats.TotalViews, &stats.TotalEarnings)
	return stats, err
}
