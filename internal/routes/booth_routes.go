package routes

import (
	"github.com/gofiber/fiber/v2"

	"boothtrack/internal/handlers"
)

// BoothDataRoutes mounts the /booth-data group. Scoped reads carry the
// identity middleware; the catch-all :id route stays last.
func BoothDataRoutes(app *fiber.App, d Deps, auth fiber.Handler) {
	g := app.Group("/booth-data")

	// scoped reads
	g.Get("/get-pc-names", auth, handlers.GetPCNames(d.Hierarchy))
	g.Get("/get-ac-names-by-pc/:pc", auth, handlers.GetACNamesByPC(d.Hierarchy))
	g.Get("/get-ward-names", auth, handlers.GetWardNames(d.Hierarchy))
	g.Get("/get-intervention-data", auth, handlers.GetInterventionData(d.Interventions, d.Hierarchy))
	g.Get("/interventions/counts", auth, handlers.GetInterventionCounts(d.Interventions, d.Hierarchy))

	// interventions
	g.Post("/create-intervention", handlers.CreateIntervention(d.Interventions))
	g.Put("/update-intervention-action/:id", handlers.UpdateInterventionAction(d.Interventions))
	g.Get("/get-intervention-data-by-constituency/:constituency", handlers.GetInterventionDataByConstituency(d.Interventions))

	// booth results
	g.Post("/create", handlers.CreateBoothResult(d.Booths))
	g.Get("/get-booths", handlers.GetBooths(d.Booths))
	g.Get("/bybooth/:boothName", handlers.GetBoothResultsByBooth(d.Booths))
	g.Get("/byConstituency/:constituency", handlers.GetDataByConstituency(d.Booths))
	g.Get("/get-data-by-constituency/:constituency", handlers.GetDataByConstituency(d.Booths))
	g.Get("/get-summary-by-constituency/:constituency", handlers.GetSummaryByConstituency(d.Booths))
	g.Get("/get-booth-status/:constituency", handlers.GetBoothStatus(d.Booths, d.Roster))
	g.Get("/get-booths-by-ac/:constituency", handlers.GetBoothsByAC(d.Roster))
	g.Get("/check-entry", handlers.CheckEntry(d.Booths))

	// totals
	g.Get("/total-votes", handlers.TotalOf(d.Booths, "total_votes"))
	g.Get("/total-polled-votes", handlers.TotalOf(d.Booths, "polled_votes"))
	g.Get("/total-fav-votes", handlers.TotalOf(d.Booths, "fav_votes"))
	g.Get("/total-ubt-votes", handlers.TotalOf(d.Booths, "ubt_votes"))
	g.Get("/total-other-votes", handlers.TotalOf(d.Booths, "other_votes"))
	g.Get("/total-votes-by-booth-type", handlers.TotalVotesByBoothType(d.Booths))
	g.Get("/votes-by-fav-ubt-other-percentage", handlers.VotesSplitByBoothType(d.Booths))
	g.Get("/get-all-constituencies-data", handlers.GetAllConstituenciesData(d.Booths))

	g.Delete("/delete/:id", handlers.DeleteBoothResult(d.Booths))

	// keep this last so it cannot shadow named routes
	g.Get("/:id", handlers.GetBoothResultByID(d.Booths))
}
