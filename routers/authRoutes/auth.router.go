package authRoutes

import (
	authControllers "monetizr/controllers/auth"
	"monetizr/middleware"
	authValidators "monetizr/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/verify", middleware.JWTMiddleware, authControllers.Verify)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authValidators.LoginHistoryList(), authControllers.LoginHistoryList)
	authGroup.Post("/logout", authControllers.Logout)
}
