package routers

import (
	"strings"
	"time"

	"monetizr/config"
	"monetizr/middleware"
	authRoutes "monetizr/routers/authRoutes"
	campaignRoutes "monetizr/routers/campaignRoutes"
	promotionRoutes "monetizr/routers/promotionRoutes"
	superAdminRoutes "monetizr/routers/superAdmin"
	userProfileRoutes "monetizr/routers/userRoutes"
	walletRoutes "monetizr/routers/walletRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const Version = "1.0.0"

// NewApp builds the fiber application with every route group mounted.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	origins := strings.TrimSpace(cfg.CORSOrigins)
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		// Credentialed requests cannot use the wildcard origin.
		AllowCredentials: origins != "*" && origins != "",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
	}))

	if !cfg.IsProduction() {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, cfg.AppName+" is running.", fiber.Map{
			"timestamp": time.Now().UTC(),
			"version":   Version,
		})
	})

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	campaignRoutes.SetupCampaignRoutes(app)
	promotionRoutes.SetupPromotionRoutes(app)
	superAdminRoutes.SetupSuperAdminRoutes(app)

	return app
}
