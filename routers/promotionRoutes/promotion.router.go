package promotionRoutes

import (
	promotionController "monetizr/controllers/promotion"
	"monetizr/middleware"
	"monetizr/models"

	"github.com/gofiber/fiber/v2"
)

func SetupPromotionRoutes(app *fiber.App) {
	promotionGroup := app.Group("/promotions", middleware.JWTMiddleware, middleware.RequireRoles(models.RolePromoter))

	promotionGroup.Get("/", promotionController.List)
}
