package routes

import (
	"notes-server/controllers"

	"github.com/gofiber/fiber/v2"
)

// Organization creation and listing are not tenant-scoped: they run without
// a tenant context.
func OrganizationRoutes(app *fiber.App, orgController *controllers.OrganizationController, limiter fiber.Handler) {
	group := app.Group("/organizations", limiter)
	group.Post("/", orgController.CreateOrganization)
	group.Get("/", orgController.ListOrganizations)
}
