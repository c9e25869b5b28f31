package promotionController

import (
	"errors"

	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/models"
	"monetizr/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Join attaches the calling promoter to an active campaign.
func Join(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	store := database.Store()
	ctx := c.UserContext()

	campaign, err := store.Campaigns.FindByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.NotFound("Campaign not found!")
		}
		return errutil.Internal("Failed to join campaign!", err)
	}
	if campaign.Status != models.CampaignActive {
		return errutil.BadRequest("Campaign is not active!")
	}

	promotion := models.Promotion{
		CampaignID:   campaign.ID,
		PromoterID:   claims.UserID,
		TrackingLink: uuid.NewString(),
		Status:       models.PromotionActive,
	}
	if err := store.Promotions.Create(ctx, &promotion); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromotion) {
			return errutil.Conflict("You already promote this campaign!")
		}
		return errutil.Internal("Failed to join campaign!", err)
	}

	zap.L().Info("promotion created",
		zap.String("promotion_id", promotion.ID),
		zap.String("campaign_id", campaign.ID),
		zap.String("promoter_id", claims.UserID),
	)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Campaign joined successfully.", fiber.Map{
		"promotion": promotion,
	})
}

func List(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	promotions, err := database.Store().Promotions.ListByPromoter(c.UserContext(), claims.UserID)
	if err != nil {
		return errutil.Internal("Failed to fetch promotions!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotions fetched successfully.", fiber.Map{
		"promotions": promotions,
	})
}
