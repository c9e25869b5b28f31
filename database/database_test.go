package database_test

import (
	"context"
	"testing"

	"monetizr/config"
	"monetizr/database"
	"monetizr/models"
	"monetizr/testutil"
	"monetizr/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		AdminEmail:    " Admin@Example.com ",
		AdminPassword: "supersecret",
		AdminName:     "Administrator",
		SaltRound:     4,
	}

	require.NoError(t, database.SeedAdmin(context.Background(), db, cfg))
	require.NoError(t, database.SeedAdmin(context.Background(), db, cfg))

	var admins []models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	require.Equal(t, "admin@example.com", admins[0].Email)
	require.True(t, utils.CheckPassword("supersecret", admins[0].PasswordHash))

	var wallets int64
	require.NoError(t, db.Model(&models.Wallet{}).Where("user_id = ?", admins[0].ID).Count(&wallets).Error)
	require.Equal(t, int64(1), wallets)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, database.SeedAdmin(context.Background(), db, &config.Config{AdminEmail: "admin@example.com"}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}
