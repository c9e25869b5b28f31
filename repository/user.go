package repository

import (
	"context"
	"errors"

	"monetizr/models"

	"gorm.io/gorm"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail returns the active user with the given email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns the user with the given id. Inactive users are filtered when activeOnly is set.
	FindByID(ctx context.Context, id string, activeOnly bool) (*models.User, error)
	// Profile returns the active user joined with the wallet balance.
	Profile(ctx context.Context, id string) (*models.Profile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create persists the user together with a zero balance wallet, or nothing.
	Create(ctx context.Context, user *models.User) error
	// Update applies a partial update and reports whether a row matched.
	Update(ctx context.Context, id string, fields map[string]any) (bool, error)
	List(ctx context.Context, page Page) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string, activeOnly bool) (*models.User, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var user models.User
	if err := query.First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) Profile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id, users.email, users.name, users.role, users.bio, users.created_at, COALESCE(wallets.balance, 0) AS balance").
		Joins("LEFT JOIN wallets ON wallets.user_id = users.id").
		Where("users.id = ? AND users.is_active = ?", id, true).
		Take(&profile).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Wallet{UserID: user.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, id string, fields map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) List(ctx context.Context, page Page) ([]models.User, int64, error) {
	var (
		users = []models.User{}
		total int64
	)

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
