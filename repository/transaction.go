package repository

import (
	"context"
	"time"

	"monetizr/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	ListByUser(ctx context.Context, userID string, page Page) ([]models.Transaction, int64, error)
	// SumCompleted totals completed entries of one type created at or after since.
	SumCompleted(ctx context.Context, userID string, typ models.TransactionType, since time.Time) (decimal.Decimal, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID string, page Page) ([]models.Transaction, int64, error) {
	var total int64
	transactions := []models.Transaction{}

	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *transactionRepository) SumCompleted(ctx context.Context, userID string, typ models.TransactionType, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND status = ? AND created_at >= ?", userID, typ, models.TransactionCompleted, since).
		Row().
		Scan(&total)
	return total, err
}
