package repository

import (
	"context"

	"monetizr/models"

	"gorm.io/gorm"
)

type WalletRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.Wallet, error)
}

type walletRepository struct {
	db *gorm.DB
}

func (r *walletRepository) FindByUser(ctx context.Context, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, notFound(err)
	}
	return &wallet, nil
}
