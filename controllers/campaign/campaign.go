package campaignController

import (
	"errors"

	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/models"
	"monetizr/repository"
	"monetizr/validators"
	campaignValidator "monetizr/validators/campaign"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// List returns the campaigns visible to the caller: creators get their own campaigns with
// promotion counts, everyone else only active ones.
func List(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	store := database.Store()
	var (
		campaigns []models.CampaignView
		err       error
	)
	if claims.Role == models.RoleCreator {
		campaigns, err = store.Campaigns.ListByCreator(c.UserContext(), claims.UserID)
	} else {
		campaigns, err = store.Campaigns.ListByStatus(c.UserContext(), models.CampaignActive)
	}
	if err != nil {
		return errutil.Internal("Failed to fetch campaigns!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaigns fetched successfully.", fiber.Map{
		"campaigns": campaigns,
	})
}

func Create(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	reqData, err := validators.Validated[campaignValidator.CreateCampaignRequest](c)
	if err != nil {
		return err
	}

	campaign := models.Campaign{
		CreatorID:    claims.UserID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Budget:       reqData.Budget,
		PricePerView: reqData.PricePerView,
		Requirements: reqData.Requirements,
		MaterialURL:  reqData.MaterialURL,
		Status:       models.CampaignDraft,
		ExpiresAt:    reqData.ExpiresAt,
	}
	if err := database.Store().Campaigns.Create(c.UserContext(), &campaign); err != nil {
		return errutil.Internal("Failed to create campaign!", err)
	}

	zap.L().Info("campaign created", zap.String("campaign_id", campaign.ID), zap.String("creator_id", claims.UserID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Campaign created successfully.", fiber.Map{
		"campaignId": campaign.ID,
	})
}

func Get(c *fiber.Ctx) error {
	campaign, err := database.Store().Campaigns.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.NotFound("Campaign not found!")
		}
		return errutil.Internal("Failed to fetch campaign!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign fetched successfully.", fiber.Map{
		"campaign": campaign,
	})
}

// UpdateStatus is allowed for the owning creator and for admins.
func UpdateStatus(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	reqData, err := validators.Validated[campaignValidator.UpdateStatusRequest](c)
	if err != nil {
		return err
	}

	store := database.Store()
	ctx := c.UserContext()

	campaign, err := store.Campaigns.FindByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.NotFound("Campaign not found!")
		}
		return errutil.Internal("Failed to update campaign!", err)
	}

	if campaign.CreatorID != claims.UserID && claims.Role != models.RoleAdmin {
		return errutil.Forbidden("You are not allowed to update this campaign!")
	}

	updated, err := store.Campaigns.UpdateStatus(ctx, campaign.ID, reqData.Status)
	if err != nil {
		return errutil.Internal("Failed to update campaign!", err)
	}
	if !updated {
		return errutil.NotFound("Campaign not found!")
	}

	zap.L().Info("campaign status changed",
		zap.String("campaign_id", campaign.ID),
		zap.String("status", string(reqData.Status)),
		zap.String("by", claims.UserID),
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campaign status updated successfully.", nil)
}
