package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePromotion = errors.New("campaign already joined by promoter")
)

// Store groups the repositories of every entity over one connection pool.
type Store struct {
	Users         UserRepository
	Wallets       WalletRepository
	BankAccounts  BankAccountRepository
	Campaigns     CampaignRepository
	Promotions    PromotionRepository
	Transactions  TransactionRepository
	LoginTracking LoginTrackingRepository
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:         &userRepository{db: db},
		Wallets:       &walletRepository{db: db},
		BankAccounts:  &bankAccountRepository{db: db},
		Campaigns:     &campaignRepository{db: db},
		Promotions:    &promotionRepository{db: db},
		Transactions:  &transactionRepository{db: db},
		LoginTracking: &loginTrackingRepository{db: db},
	}
}

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
