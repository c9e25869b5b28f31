package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking records a successful login.
type LoginTracking struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	IPAddress string    `gorm:"type:varchar(64)" json:"ip_address"`
	Device    string    `gorm:"type:text" json:"device"`
	CreatedAt time.Time `json:"timestamp"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *LoginTracking) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = newID()
	}
	return nil
}
