package superAdminRoutes

import (
	superAdminController "monetizr/controllers/superAdmin"
	"monetizr/middleware"
	"monetizr/models"
	superAdminValidator "monetizr/validators/superAdmin"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/users", superAdminValidator.List(), superAdminController.UserList)
	adminGroup.Put("/users/:id/active", superAdminValidator.SetActive(), superAdminController.SetUserActive)
}
