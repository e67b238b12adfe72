package middleware

import (
	"notes-server/apperrors"
	"notes-server/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole gates an operation on the acting member's role. The allowed
// set is the whole policy: roles are flat, nothing is implied. Must run
// behind TenantContext.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tc := TenantFromLocals(c)
		if tc == nil {
			return apperrors.ErrMissingIdentifiers
		}
		if !models.RoleAllowed(tc.Member.Role, allowed...) {
			return apperrors.ErrRoleNotPermitted
		}
		return c.Next()
	}
}
