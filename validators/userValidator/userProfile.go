package userValidator

import (
	"strings"

	"monetizr/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name string  `json:"name" validate:"required"`
	Bio  *string `json:"bio"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Bio != nil {
		bio := strings.TrimSpace(*r.Bio)
		if bio == "" {
			r.Bio = nil
		} else {
			r.Bio = &bio
		}
	}
}

type BankAccountRequest struct {
	BankName          string `json:"bank_name" validate:"required"`
	AccountHolderName string `json:"account_holder_name" validate:"required"`
	AccountNumber     string `json:"account_number" validate:"required,max=64"`
}

func (r *BankAccountRequest) Normalize() {
	r.BankName = strings.TrimSpace(r.BankName)
	r.AccountHolderName = strings.TrimSpace(r.AccountHolderName)
	r.AccountNumber = strings.TrimSpace(r.AccountNumber)
}

func UpdateProfile() fiber.Handler {
	return validators.Body[UpdateProfileRequest]()
}

func BankAccount() fiber.Handler {
	return validators.Body[BankAccountRequest]()
}

func TransactionList() fiber.Handler {
	return validators.Query[validators.PageQuery]()
}
