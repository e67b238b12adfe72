package routes

import (
	"notes-server/controllers"
	middleware "notes-server/middlewares"
	"notes-server/models"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

// Every note route runs behind the tenant context, then its operation's role
// gate. Fixed policy: create {writer, admin}, read {reader, writer, admin},
// delete {admin}.
func NoteRoutes(app *fiber.App, noteController *controllers.NoteController, tenants *service.TenantService, limiter fiber.Handler) {
	group := app.Group("/notes", limiter, middleware.TenantContext(tenants))

	group.Post("/",
		middleware.RequireRole(models.RoleWriter, models.RoleAdmin),
		noteController.CreateNote)
	group.Get("/",
		middleware.RequireRole(models.RoleReader, models.RoleWriter, models.RoleAdmin),
		noteController.ListNotes)
	group.Get("/:id",
		middleware.RequireRole(models.RoleReader, models.RoleWriter, models.RoleAdmin),
		noteController.GetNote)
	group.Delete("/:id",
		middleware.RequireRole(models.RoleAdmin),
		noteController.DeleteNote)
}
