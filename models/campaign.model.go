package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID           string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatorID    string          `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Budget       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"budget"`
	PricePerView decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price_per_view"`
	Requirements string          `gorm:"type:text" json:"requirements"`
	MaterialURL  string          `gorm:"type:text" json:"material_url"`
	Status       CampaignStatus  `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	ExpiresAt    *time.Time      `json:"expires_at"`

	Creator User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	// Expiry is stored in UTC.
	if c.ExpiresAt != nil {
		utc := c.ExpiresAt.UTC()
		c.ExpiresAt = &utc
	}
	return nil
}

// CampaignView is a campaign joined with its creator name and, for creator listings, the
// number of promotions attached to it.
type CampaignView struct {
	Campaign
	CreatorName    string `json:"creator_name"`
	PromotionCount int64  `json:"promotion_count"`
}
