package routes

import (
	"github.com/gofiber/fiber/v2"

	"boothtrack/internal/handlers"
)

// ACDataRoutes mounts the roster master lists used by the entry forms.
func ACDataRoutes(app *fiber.App, d Deps) {
	g := app.Group("/ac-data")

	g.Post("/create-data", handlers.CreateAssignment(d.Roster))
	g.Get("/get-pcs", handlers.GetPCs(d.Roster))
	g.Get("/get-constituencies-by-pc/:pc", handlers.GetConstituenciesByPC(d.Roster))
	g.Get("/get-wards", handlers.GetWards(d.Roster))
	g.Get("/get-ac-data", handlers.GetAssignments(d.Roster))
}
