package walletController

import (
	"errors"

	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/repository"
	"monetizr/validators"

	"github.com/gofiber/fiber/v2"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	wallet, err := database.Store().Wallets.FindByUser(c.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.NotFound("Wallet not found!")
		}
		return errutil.Internal("Failed to fetch wallet!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance":    wallet.Balance,
		"updated_at": wallet.UpdatedAt,
	})
}

// TransactionList returns the caller's ledger entries, newest first.
func TransactionList(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	query, err := validators.Validated[validators.PageQuery](c)
	if err != nil {
		return err
	}

	page := repository.Page{Page: query.Page, Limit: query.Limit}
	transactions, total, err := database.Store().Transactions.ListByUser(c.UserContext(), claims.UserID, page)
	if err != nil {
		return errutil.Internal("Failed to fetch transactions!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"page":  page.Page,
			"limit": page.Limit,
			"total": total,
		},
	})
}
