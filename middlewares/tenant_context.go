package middleware

import (
	"notes-server/models"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderOrgID    = "X-Org-ID"
	HeaderMemberID = "X-Member-ID"

	tenantLocalsKey = "tenant"
)

// TenantContext resolves the X-Org-ID / X-Member-ID headers into a verified
// tenant context and stores it in request locals. Handlers behind this
// middleware never re-validate membership.
func TenantContext(tenants *service.TenantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tc, err := tenants.ResolveContext(c.Get(HeaderOrgID), c.Get(HeaderMemberID))
		if err != nil {
			return err
		}
		c.Locals(tenantLocalsKey, tc)
		return c.Next()
	}
}

// TenantFromLocals returns the context stored by TenantContext, or nil when
// the route was not behind it.
func TenantFromLocals(c *fiber.Ctx) *models.TenantContext {
	tc, _ := c.Locals(tenantLocalsKey).(*models.TenantContext)
	return tc
}
