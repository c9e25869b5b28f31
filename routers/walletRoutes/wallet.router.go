package walletRoutes

import (
	walletController "monetizr/controllers/wallet"
	"monetizr/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet", middleware.JWTMiddleware)

	walletGroup.Get("/balance", walletController.GetWalletBalance)
}
