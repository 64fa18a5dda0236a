package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"boothtrack/dto"
	"boothtrack/internal/authctx"
	"boothtrack/internal/normalize"
	"boothtrack/internal/scope"
	"boothtrack/model"
	"boothtrack/services"
)

// InterventionStore is the intervention persistence the handlers need.
// *repository.InterventionRepository implements it.
type InterventionStore interface {
	Insert(ctx context.Context, iv model.Intervention) (model.Intervention, error)
	UpdateAction(ctx context.Context, id bson.ObjectID, action string) (*model.Intervention, error)
	Find(ctx context.Context, filter bson.M) ([]model.Intervention, error)
	RawCounts(ctx context.Context, filter bson.M) (int, map[string]int, map[string]int, error)
	FindByConstituency(ctx context.Context, constituency string) ([]model.Intervention, error)
}

// interventionCallerFilter builds the caller-supplied part of the
// query from the optional query params every intervention read takes.
func interventionCallerFilter(c *fiber.Ctx) bson.M {
	filter := bson.M{}
	if v := c.Query("pc"); v != "" {
		filter["pc"] = normalize.Key(v)
	}
	if v := c.Query("constituency"); v != "" {
		filter["constituency"] = normalize.Key(v)
	}
	if v := c.Query("ward"); v != "" {
		filter["ward"] = normalize.Key(v)
	}
	if v := c.Query("booth"); v != "" {
		filter["booth"] = normalize.Key(v)
	}
	if v := c.Query("interventionType"); v != "" {
		filter["intervention_type"] = v
	}
	if v := c.Query("interventionAction"); v != "" {
		filter["intervention_action"] = v
	}
	return filter
}

func interventionResponses(ivs []model.Intervention) []dto.InterventionResponse {
	out := make([]dto.InterventionResponse, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, dto.InterventionResponse{
			ID:                          iv.ID.Hex(),
			PC:                          iv.PC,
			Constituency:                iv.Constituency,
			Ward:                        iv.Ward,
			Booth:                       iv.Booth,
			InterventionType:            iv.InterventionType,
			InterventionIssues:          iv.InterventionIssues,
			InterventionIssueBrief:      iv.InterventionIssueBrief,
			InterventionContactFollowUp: iv.InterventionContactFollowUp,
			InterventionAction:          iv.InterventionAction,
		})
	}
	return out
}

// GetInterventionData godoc
// @Summary      List interventions visible to the caller
// @Description  Admins see every matching record; everyone else sees only records inside their hierarchy scope. An empty scope returns an empty list.
// @Tags         interventions
// @Produce      json
// @Security     BearerAuth
// @Param        pc                  query  string  false  "filter by PC"
// @Param        constituency        query  string  false  "filter by constituency"
// @Param        ward                query  string  false  "filter by ward"
// @Param        booth               query  string  false  "filter by booth"
// @Param        interventionType    query  string  false  "filter by type"
// @Param        interventionAction  query  string  false  "filter by action"
// @Success      200  {array}   dto.InterventionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /booth-data/get-intervention-data [get]
func GetInterventionData(store InterventionStore, dir scope.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := authctx.From(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		filter := interventionCallerFilter(c)

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if !id.IsAdmin {
			if id.Email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "user email missing")
			}
			res, err := scope.Resolve(ctx, dir, id.Email)
			if err != nil {
				log.WithError(err).Error("scope resolution failed")
				return fiber.ErrInternalServerError
			}
			// Empty list beats a 404 for a dashboard table.
			if res.Empty() {
				return c.JSON([]dto.InterventionResponse{})
			}
			filter = scope.And(filter, res.Filter())
		}

		ivs, err := store.Find(ctx, filter)
		if err != nil {
			log.WithError(err).Error("intervention find failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(interventionResponses(ivs))
	}
}

// GetInterventionCounts godoc
// @Summary      Intervention totals by type and action
// @Description  Same filters and scoping as the list endpoint. The shape always carries the three type keys and three action keys; empty scope yields the all-zero shape with 200.
// @Tags         interventions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InterventionCounts
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /booth-data/interventions/counts [get]
func GetInterventionCounts(store InterventionStore, dir scope.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := authctx.From(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		filter := interventionCallerFilter(c)

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if !id.IsAdmin {
			if id.Email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "user email missing")
			}
			res, err := scope.Resolve(ctx, dir, id.Email)
			if err != nil {
				log.WithError(err).Error("scope resolution failed")
				return fiber.ErrInternalServerError
			}
			if res.Empty() {
				return c.JSON(services.EmptyInterventionCounts())
			}
			filter = scope.And(filter, res.Filter())
		}

		total, byType, byAction, err := store.RawCounts(ctx, filter)
		if err != nil {
			log.WithError(err).Error("intervention counts failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(services.ShapeInterventionCounts(total, byType, byAction))
	}
}

// CreateIntervention records a new incident report.
func CreateIntervention(store InterventionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var iv model.Intervention
		if err := c.BodyParser(&iv); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if iv.Constituency == "" {
			return fiber.NewError(fiber.StatusBadRequest, "constituency is required")
		}
		if iv.InterventionType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "interventionType is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		saved, err := store.Insert(ctx, iv)
		if err != nil {
			log.WithError(err).Error("intervention insert failed")
			return fiber.ErrInternalServerError
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// UpdateInterventionAction sets the action taken on one report.
func UpdateInterventionAction(store InterventionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}
		var body dto.UpdateInterventionActionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if body.InterventionAction == "" {
			return fiber.NewError(fiber.StatusBadRequest, "interventionAction is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		updated, err := store.UpdateAction(ctx, id, body.InterventionAction)
		if err != nil {
			log.WithError(err).Error("intervention update failed")
			return fiber.ErrInternalServerError
		}
		if updated == nil {
			return fiber.NewError(fiber.StatusNotFound, "No record found with this ID")
		}
		return c.JSON(updated)
	}
}

// GetInterventionDataByConstituency lists one constituency's reports.
// 404 here means the constituency key itself yielded nothing, which is
// distinct from an empty personal scope.
func GetInterventionDataByConstituency(store InterventionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		constituency := c.Params("constituency")
		if constituency == "" {
			return fiber.NewError(fiber.StatusBadRequest, "constituency is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		ivs, err := store.FindByConstituency(ctx, constituency)
		if err != nil {
			log.WithError(err).Error("intervention find failed")
			return fiber.ErrInternalServerError
		}
		if len(ivs) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No data found for this constituency")
		}
		return c.JSON(interventionResponses(ivs))
	}
}
