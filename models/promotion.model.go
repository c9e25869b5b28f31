package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PromotionStatus string

const (
	PromotionActive    PromotionStatus = "active"
	PromotionCompleted PromotionStatus = "completed"
	PromotionRejected  PromotionStatus = "rejected"
)

// Promotion links a promoter to a campaign they promote.
type Promotion struct {
	ID           string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	CampaignID   string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_promotions_campaign_promoter" json:"campaign_id"`
	PromoterID   string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_promotions_campaign_promoter;index" json:"promoter_id"`
	TrackingLink string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"tracking_link"`
	Status       PromotionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ViewsCount   int64           `gorm:"not null;default:0" json:"views_count"`
	Earnings     decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"earnings"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Campaign Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Promoter User     `gorm:"foreignKey:PromoterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}

type PromotionView struct {
	Promotion
	CampaignTitle string `json:"campaign_title"`
}
