package campaignRoutes

import (
	campaignController "monetizr/controllers/campaign"
	promotionController "monetizr/controllers/promotion"
	"monetizr/middleware"
	"monetizr/models"
	campaignValidator "monetizr/validators/campaign"

	"github.com/gofiber/fiber/v2"
)

func SetupCampaignRoutes(app *fiber.App) {
	campaignGroup := app.Group("/campaigns", middleware.JWTMiddleware)

	campaignGroup.Get("/", campaignController.List)
	campaignGroup.Post("/", middleware.RequireRoles(models.RoleCreator), campaignValidator.CreateCampaign(), campaignController.Create)
	campaignGroup.Get("/:id", campaignController.Get)
	campaignGroup.Put("/:id/status", campaignValidator.UpdateStatus(), campaignController.UpdateStatus)
	campaignGroup.Post("/:id/promotions", middleware.RequireRoles(models.RolePromoter), promotionController.Join)
}
