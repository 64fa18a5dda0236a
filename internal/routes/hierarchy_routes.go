package routes

import (
	"github.com/gofiber/fiber/v2"

	"boothtrack/internal/handlers"
)

func HierarchyRoutes(app *fiber.App, d Deps) {
	g := app.Group("/hierarchy")

	g.Get("/scope-by-email", handlers.ScopeByEmail(d.Hierarchy))
	g.Post("/create", handlers.CreateHierarchyRow(d.Hierarchy))
}
