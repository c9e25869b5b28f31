package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"monetizr/config"
	"monetizr/models"
	"monetizr/repository"
	"monetizr/utils"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// Store returns the repositories bound to the global connection.
func Store() *repository.Store {
	return repository.New(Database.Db)
}

// Open opens a connection for the configured driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	} else {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	return gorm.Open(dialector, gormCfg)
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.DBDriver) {
	case "postgres", "":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// ConnectDb connects, migrates and seeds the database, then publishes it as Database.
// It runs once at startup.
func ConnectDb(cfg *config.Config) {
	db, err := Open(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("Failed to get database instance", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		zap.L().Fatal("Migration failed", zap.Error(err))
	}

	if err := SeedAdmin(context.Background(), db, cfg); err != nil {
		zap.L().Fatal("Admin seed failed", zap.Error(err))
	}

	Database = DbInstance{Db: db}
}

// Migrate creates or updates every table. It is idempotent.
func Migrate(db *gorm.DB) error {
	zap.L().Info("Running Migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.BankAccount{},
		&models.Campaign{},
		&models.Promotion{},
		&models.Transaction{},
		&models.LoginTracking{},
	); err != nil {
		return err
	}

	zap.L().Info("Migrations completed successfully.")
	return nil
}

// SeedAdmin creates the configured admin account when it does not exist yet.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.SaltRound)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Email:        email,
			Name:         cfg.AdminName,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		zap.L().Info("Seeded admin account", zap.String("email", email))
		return tx.Create(&models.Wallet{UserID: admin.ID}).Error
	})
}
