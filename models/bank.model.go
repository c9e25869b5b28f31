package models

import (
	"time"

	"gorm.io/gorm"
)

// BankAccount is the payout account of a user. At most one per user.
type BankAccount struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"-"`
	BankName          string    `gorm:"type:varchar(255);not null" json:"bank_name"`
	AccountHolderName string    `gorm:"type:varchar(255);not null" json:"account_holder_name"`
	AccountNumber     string    `gorm:"type:varchar(64);not null" json:"account_number"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = newID()
	}
	return nil
}
