package campaignValidator

import (
	"strings"
	"time"

	"monetizr/models"
	"monetizr/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateCampaignRequest struct {
	Title        string          `json:"title" validate:"required,max=255"`
	Description  string          `json:"description" validate:"required,min=10"`
	Budget       decimal.Decimal `json:"budget" validate:"required,min=10000"`
	PricePerView decimal.Decimal `json:"price_per_view" validate:"required,min=100"`
	Requirements string          `json:"requirements"`
	MaterialURL  string          `json:"material_url" validate:"omitempty,url"`
	ExpiresAt    *time.Time      `json:"expires_at"`
}

func (r *CreateCampaignRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Requirements = strings.TrimSpace(r.Requirements)
	r.MaterialURL = strings.TrimSpace(r.MaterialURL)
	if r.ExpiresAt != nil {
		utc := r.ExpiresAt.UTC()
		r.ExpiresAt = &utc
	}
}

type UpdateStatusRequest struct {
	Status models.CampaignStatus `json:"status" validate:"required,oneof=draft active paused completed"`
}

func (r *CreateCampaignRequest) Check() map[string]string {
	details := map[string]string{}
	if r.Budget.GreaterThan(models.MaxMoney) {
		details["budget"] = "budget must be at most " + models.MaxMoney.String() + "!"
	}
	if r.PricePerView.GreaterThan(models.MaxMoney) {
		details["price_per_view"] = "price_per_view must be at most " + models.MaxMoney.String() + "!"
	}
	if r.ExpiresAt != nil && !r.ExpiresAt.After(time.Now()) {
		details["expires_at"] = "expires_at must be in the future!"
	}
	return details
}

// CreateCampaign validator middleware
func CreateCampaign() fiber.Handler {
	return validators.Body[CreateCampaignRequest]()
}

func UpdateStatus() fiber.Handler {
	return validators.Body[UpdateStatusRequest]()
}
