package userController

import (
	"errors"

	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/models"
	"monetizr/repository"
	"monetizr/validators"
	userValidator "monetizr/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func currentUserID(c *fiber.Ctx) (string, error) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return "", errutil.Unauthorized("Unauthorized!")
	}
	return claims.UserID, nil
}

func GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := database.Store().Users.Profile(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.NotFound("User not found!")
		}
		return errutil.Internal("Failed to fetch profile!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
		"user": profile,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reqData, err := validators.Validated[userValidator.UpdateProfileRequest](c)
	if err != nil {
		return err
	}

	updated, err := database.Store().Users.Update(c.UserContext(), userID, map[string]any{
		"name": reqData.Name,
		"bio":  reqData.Bio,
	})
	if err != nil {
		return errutil.Internal("Failed to update profile!", err)
	}
	if !updated {
		return errutil.NotFound("User not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", nil)
}

func GetBankAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	account, err := database.Store().BankAccounts.FindByUser(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No bank account linked.", fiber.Map{
				"bank_account": nil,
			})
		}
		return errutil.Internal("Failed to fetch bank account!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank account fetched successfully.", fiber.Map{
		"bank_account": account,
	})
}

// UpsertBankAccount replaces the caller's bank details, creating them on first use.
func UpsertBankAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reqData, err := validators.Validated[userValidator.BankAccountRequest](c)
	if err != nil {
		return err
	}

	account := models.BankAccount{
		UserID:            userID,
		BankName:          reqData.BankName,
		AccountHolderName: reqData.AccountHolderName,
		AccountNumber:     reqData.AccountNumber,
	}
	if err := database.Store().BankAccounts.Upsert(c.UserContext(), &account); err != nil {
		return errutil.Internal("Failed to save bank account!", err)
	}

	zap.L().Info("bank account saved", zap.String("user_id", userID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank account saved successfully.", nil)
}

// Summary returns the dashboard widgets for the caller's role.
func Summary(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	store := database.Store()
	ctx := c.UserContext()
	monthStart := now.BeginningOfMonth()

	balance := decimal.Zero
	wallet, err := store.Wallets.FindByUser(ctx, claims.UserID)
	switch {
	case err == nil:
		balance = wallet.Balance
	case !errors.Is(err, repository.ErrNotFound):
		return errutil.Internal("Failed to fetch summary!", err)
	}

	data := fiber.Map{
		"role":    claims.Role,
		"balance": balance,
	}

	switch claims.Role {
	case models.RoleCreator:
		stats, err := store.Campaigns.CreatorStats(ctx, claims.UserID, monthStart)
		if err != nil {
			return errutil.Internal("Failed to fetch summary!", err)
		}
		data["campaigns"] = stats
	case models.RolePromoter:
		stats, err := store.Promotions.PromoterStats(ctx, claims.UserID)
		if err != nil {
			return errutil.Internal("Failed to fetch summary!", err)
		}
		earned, err := store.Transactions.SumCompleted(ctx, claims.UserID, models.TransactionEarning, monthStart)
		if err != nil {
			return errutil.Internal("Failed to fetch summary!", err)
		}
		data["promotions"] = stats
		data["earnings_this_month"] = earned
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully.", data)
}
