package authController

import (
	"errors"

	"monetizr/config"
	"monetizr/database"
	"monetizr/errutil"
	"monetizr/middleware"
	"monetizr/models"
	"monetizr/repository"
	"monetizr/utils"
	"monetizr/validators"
	authValidator "monetizr/validators/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// invalidCredentials is shared by every login failure so the response never tells which
// field was wrong.
const invalidCredentials = "Invalid email or password!"

func Register(c *fiber.Ctx) error {
	reqData, err := validators.Validated[authValidator.RegisterRequest](c)
	if err != nil {
		return err
	}

	store := database.Store()
	ctx := c.UserContext()

	// Check if email already exists
	exists, err := store.Users.EmailExists(ctx, reqData.Email)
	if err != nil {
		return errutil.Internal("Failed to register user!", err)
	}
	if exists {
		return errutil.Conflict("Email is already registered!")
	}

	hashedPassword, err := utils.HashPassword(reqData.Password, config.AppConfig.SaltRound)
	if err != nil {
		return errutil.Internal("Failed to process your request!", err)
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		PasswordHash: hashedPassword,
		Role:         reqData.Role,
		IsActive:     true,
	}

	// Creates the wallet in the same transaction
	if err := store.Users.Create(ctx, &newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return errutil.Conflict("Email is already registered!")
		}
		return errutil.Internal("Failed to register user!", err)
	}

	token, err := middleware.GenerateJWT(&newUser)
	if err != nil {
		return errutil.Internal("Failed to generate token", err)
	}
	middleware.SetAuthCookie(c, token)

	zap.L().Info("user registered", zap.String("user_id", newUser.ID), zap.String("role", string(newUser.Role)))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
		"user":  newUser.Public(),
	})
}

func Login(c *fiber.Ctx) error {
	reqData, err := validators.Validated[authValidator.LoginRequest](c)
	if err != nil {
		return err
	}

	store := database.Store()
	ctx := c.UserContext()

	// Only active users are returned
	user, err := store.Users.FindByEmail(ctx, reqData.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Match the bcrypt cost of a password mismatch.
			utils.CheckPassword(reqData.Password, utils.DummyHash(config.AppConfig.SaltRound))
			return errutil.Unauthorized(invalidCredentials)
		}
		return errutil.Internal("Failed to login!", err)
	}

	if !utils.CheckPassword(reqData.Password, user.PasswordHash) {
		zap.L().Info("login rejected", zap.String("user_id", user.ID), zap.String("ip", c.IP()))
		return errutil.Unauthorized(invalidCredentials)
	}

	token, err := middleware.GenerateJWT(user)
	if err != nil {
		return errutil.Internal("Failed to generate token", err)
	}
	middleware.SetAuthCookie(c, token)

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: c.IP(),
		Device:    c.Get(fiber.HeaderUserAgent),
	}
	if err := store.LoginTracking.Record(ctx, &loginTracking); err != nil {
		zap.L().Warn("failed to save login tracking", zap.String("user_id", user.ID), zap.Error(err))
	}

	zap.L().Info("user logged in", zap.String("user_id", user.ID), zap.String("ip", loginTracking.IPAddress))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

// Verify re-reads the token owner so deactivated accounts lose access immediately.
func Verify(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	user, err := database.Store().Users.FindByID(c.UserContext(), claims.UserID, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errutil.Unauthorized("User not found or inactive!")
		}
		return errutil.Internal("Failed to verify token!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token is valid.", fiber.Map{
		"user": user.Public(),
	})
}

func LoginHistoryList(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return errutil.Unauthorized("Unauthorized!")
	}

	query, err := validators.Validated[validators.PageQuery](c)
	if err != nil {
		return err
	}

	page := repository.Page{Page: query.Page, Limit: query.Limit}
	entries, total, err := database.Store().LoginTracking.ListByUser(c.UserContext(), claims.UserID, page)
	if err != nil {
		return errutil.Internal("Failed to fetch login history!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", fiber.Map{
		"loginTracking": entries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	middleware.ClearAuthCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
