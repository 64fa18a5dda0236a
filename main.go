package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"boothtrack/bootstrap"
	"boothtrack/database"
	_ "boothtrack/docs"
	"boothtrack/dto"
	"boothtrack/internal/logger"
	"boothtrack/internal/routes"
)

// @title        boothtrack API
// @version      1.0
// @description  Election-day field reporting backend: booth vote counts per time slot, intervention reports, and hierarchy-scoped read access.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Info("no .env file found, using system environment variables")
	}
	logger.Init()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required")
	}

	cfg := database.LoadConfig()
	client := database.ConnectMongo(cfg)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.WithError(err).Fatal("ensure indexes failed")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.NewDeps(db))

	log.Infof("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
