package routes

import (
	"github.com/gofiber/fiber/v2"

	"boothtrack/internal/handlers"
)

func AuthRoutes(app *fiber.App, d Deps) {
	g := app.Group("/auth")

	g.Post("/login", handlers.Login(d.Users))
}
