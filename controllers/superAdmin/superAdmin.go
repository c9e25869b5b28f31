package superAdminController

import (
	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/repository"
	"monetizr/validators"
	superAdminValidator "monetizr/validators/superAdmin"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func UserList(c *fiber.Ctx) error {
	query, err := validators.Validated[validators.PageQuery](c)
	if err != nil {
		return err
	}

	page := repository.Page{Page: query.Page, Limit: query.Limit}
	users, total, err := database.Store().Users.List(c.UserContext(), page)
	if err != nil {
		return errutil.Internal("Failed to fetch user list!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched successfully.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

// SetUserActive activates or deactivates an account. Deactivated users can neither log in
// nor pass token verification.
func SetUserActive(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	reqData, err := validators.Validated[superAdminValidator.SetActiveRequest](c)
	if err != nil {
		return err
	}

	userID := c.Params("id")
	if userID == claims.UserID && !*reqData.IsActive {
		return errutil.BadRequest("You cannot deactivate your own account!")
	}

	updated, err := database.Store().Users.Update(c.UserContext(), userID, map[string]any{
		"is_active": *reqData.IsActive,
	})
	if err != nil {
		return errutil.Internal("Failed to update user!", err)
	}
	if !updated {
		return errutil.NotFound("User not found!")
	}

	zap.L().Info("user activation changed",
		zap.String("admin_id", claims.UserID),
		zap.String("user_id", userID),
		zap.Bool("is_active", *reqData.IsActive),
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", nil)
}
