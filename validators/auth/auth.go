package authValidator

import (
	"fmt"
	"strings"

	"monetizr/models"
	"monetizr/utils"
	"monetizr/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=creator promoter"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = models.Role(strings.ToLower(strings.TrimSpace(string(r.Role))))
	if r.Role == "" {
		r.Role = models.RolePromoter
	}
}

// Check enforces the bcrypt input limit, which is counted in bytes.
func (r *RegisterRequest) Check() map[string]string {
	if len([]byte(r.Password)) > utils.MaxPasswordBytes {
		return map[string]string{"password": fmt.Sprintf("password must be at most %d bytes long!", utils.MaxPasswordBytes)}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Register validator middleware
func Register() fiber.Handler {
	return validators.Body[RegisterRequest]()
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[LoginRequest]()
}

func LoginHistoryList() fiber.Handler {
	return validators.Query[validators.PageQuery]()
}
