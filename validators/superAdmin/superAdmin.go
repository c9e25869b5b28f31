package superAdminValidator

import (
	"monetizr/validators"

	"github.com/gofiber/fiber/v2"
)

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func List() fiber.Handler {
	return validators.Query[validators.PageQuery]()
}

func SetActive() fiber.Handler {
	return validators.Body[SetActiveRequest]()
}
