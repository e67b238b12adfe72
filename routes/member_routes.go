package routes

import (
	"notes-server/controllers"

	"github.com/gofiber/fiber/v2"
)

// Members are scoped by the organization id in the path, not by the
// two-header tenant context; only org existence is checked downstream.
func MemberRoutes(app *fiber.App, memberController *controllers.MemberController, limiter fiber.Handler) {
	group := app.Group("/organizations/:orgId/members", limiter)
	group.Post("/", memberController.CreateMember)
	group.Get("/", memberController.ListMembers)
}
