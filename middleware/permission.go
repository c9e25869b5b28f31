package middleware

import (
	"monetizr/errutil"
	"monetizr/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that lets the request through only when the
// authenticated role is in roles. It must run after JWTMiddleware; a request without
// verified claims is still answered with 401.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return errutil.Unauthorized("Unauthorized!")
		}

		if _, ok := allowed[claims.Role]; !ok {
			return errutil.Forbidden("You do not have permission to access this resource!")
		}

		return c.Next()
	}
}
