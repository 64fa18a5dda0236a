package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"boothtrack/internal/middleware"
	"boothtrack/internal/repository"
)

// Deps holds the shared wiring for every route group.
type Deps struct {
	Hierarchy     *repository.HierarchyRepository
	Booths        *repository.BoothRepository
	Roster        *repository.AssignmentRepository
	Interventions *repository.InterventionRepository
	Users         *repository.UserRepository
}

func NewDeps(db *mongo.Database) Deps {
	return Deps{
		Hierarchy:     repository.NewHierarchyRepository(db),
		Booths:        repository.NewBoothRepository(db),
		Roster:        repository.NewAssignmentRepository(db),
		Interventions: repository.NewInterventionRepository(db),
		Users:         repository.NewUserRepository(db),
	}
}

// Register mounts every route group on the app.
func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireIdentity(d.Users)

	AuthRoutes(app, d)
	HierarchyRoutes(app, d)
	BoothDataRoutes(app, d, auth)
	ACDataRoutes(app, d)
}
