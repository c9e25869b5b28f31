package repository

import (
	"context"

	"monetizr/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BankAccountRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.BankAccount, error)
	// Upsert inserts the account or replaces the fields of the user's existing one in a
	// single statement.
	Upsert(ctx context.Context, account *models.BankAccount) error
}

type bankAccountRepository struct {
	db *gorm.DB
}

func (r *bankAccountRepository) FindByUser(ctx context.Context, userID string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, notFound(err)
	}
	return &account, nil
}

func (r *bankAccountRepository) Upsert(ctx context.Context, account *models.BankAccount) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bank_name", "account_holder_name", "account_number", "updated_at"}),
		}).
		Create(account).Error
}
