package repository

import (
	"context"

	"monetizr/models"

	"gorm.io/gorm"
)

type LoginTrackingRepository interface {
	Record(ctx context.Context, entry *models.LoginTracking) error
	ListByUser(ctx context.Context, userID string, page Page) ([]models.LoginTracking, int64, error)
}

type loginTrackingRepository struct {
	db *gorm.DB
}

func (r *loginTrackingRepository) Record(ctx context.Context, entry *models.LoginTracking) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *loginTrackingRepository) ListByUser(ctx context.Context, userID string, page Page) ([]models.LoginTracking, int64, error) {
	var total int64
	entries := []models.LoginTracking{}

	query := r.db.WithContext(ctx).Model(&models.LoginTracking{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
