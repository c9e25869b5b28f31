package main

import (
	"os"
	"os/signal"
	"syscall"

	"monetizr/config"
	"monetizr/database"
	"monetizr/logger"
	"monetizr/routers"
	"monetizr/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	log := logger.New(config.AppConfig.AppEnv, config.AppConfig.AppName)
	defer func() { _ = log.Sync() }()

	database.ConnectDb(config.AppConfig)

	scheduler, err := utils.InitializeCampaignScheduler(config.AppConfig.CampaignExpirySchedule, database.Store())
	if err != nil {
		log.Fatal("Invalid CAMPAIGN_EXPIRY_SCHEDULE", zap.Error(err))
	}

	app := routers.NewApp(config.AppConfig)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server...")
		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
		if err := app.Shutdown(); err != nil {
			log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server is running", zap.String("port", config.AppConfig.Port))
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
