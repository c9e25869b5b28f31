package userProfileRoutes

import (
	userProfileController "monetizr/controllers/userControllers"
	walletController "monetizr/controllers/wallet"
	"monetizr/middleware"
	userProfileValidator "monetizr/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userProfileController.GetProfile)
	userGroup.Put("/profile", userProfileValidator.UpdateProfile(), userProfileController.UpdateProfile)
	userGroup.Get("/bank-account", userProfileController.GetBankAccount)
	userGroup.Put("/bank-account", userProfileValidator.BankAccount(), userProfileController.UpsertBankAccount)
	userGroup.Get("/summary", userProfileController.Summary)
	userGroup.Get("/transactions", userProfileValidator.TransactionList(), walletController.TransactionList)
}
