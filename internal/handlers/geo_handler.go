package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"boothtrack/internal/authctx"
	"boothtrack/internal/normalize"
	"boothtrack/internal/scope"
)

// GeoDirectory is what the scoped geography listings need from the
// hierarchy directory: the resolver's row lookup plus distinct-value
// projections. *repository.HierarchyRepository implements it.
type GeoDirectory interface {
	scope.Directory
	DistinctPCs(ctx context.Context, filter bson.M) ([]string, error)
	DistinctConstituencies(ctx context.Context, filter bson.M) ([]string, error)
	DistinctWards(ctx context.Context, filter bson.M) ([]string, error)
}

// GetPCNames godoc
// @Summary      List visible PC names
// @Tags         geography
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /booth-data/get-pc-names [get]
func GetPCNames(dir GeoDirectory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := authctx.From(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		// Admin sees everything.
		if id.IsAdmin {
			pcs, err := dir.DistinctPCs(ctx, bson.M{})
			if err != nil {
				log.WithError(err).Error("distinct pcs failed")
				return fiber.ErrInternalServerError
			}
			return c.JSON(sortedNames(pcs))
		}

		if id.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user email missing")
		}
		res, err := scope.Resolve(ctx, dir, id.Email)
		if err != nil {
			log.WithError(err).Error("scope resolution failed")
			return fiber.ErrInternalServerError
		}
		// No scope is "nothing to show", not an error.
		if res.Empty() {
			return c.JSON([]string{})
		}

		pcs, err := dir.DistinctPCs(ctx, res.Filter())
		if err != nil {
			log.WithError(err).Error("distinct pcs failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedNames(pcs))
	}
}

// GetACNamesByPC lists the visible constituencies under one PC.
func GetACNamesByPC(dir GeoDirectory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pc := c.Params("pc")
		if pc == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc is required")
		}
		pcFilter := bson.M{"pc": normalize.Key(pc)}

		id, ok := authctx.From(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if id.IsAdmin {
			acs, err := dir.DistinctConstituencies(ctx, pcFilter)
			if err != nil {
				log.WithError(err).Error("distinct constituencies failed")
				return fiber.ErrInternalServerError
			}
			return c.JSON(sortedNames(acs))
		}

		if id.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user email missing")
		}
		res, err := scope.Resolve(ctx, dir, id.Email)
		if err != nil {
			log.WithError(err).Error("scope resolution failed")
			return fiber.ErrInternalServerError
		}
		if res.Empty() {
			return c.JSON([]string{})
		}

		acs, err := dir.DistinctConstituencies(ctx, scope.And(pcFilter, res.Filter()))
		if err != nil {
			log.WithError(err).Error("distinct constituencies failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedNames(acs))
	}
}

// GetWardNames lists the visible wards under one pc + constituency,
// numerically sorted.
func GetWardNames(dir GeoDirectory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pc := c.Query("pc")
		constituency := c.Query("constituency")
		if pc == "" || constituency == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc and constituency are required")
		}
		pairFilter := bson.M{
			"pc":           normalize.Key(pc),
			"constituency": normalize.Key(constituency),
		}

		id, ok := authctx.From(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if id.IsAdmin {
			wards, err := dir.DistinctWards(ctx, pairFilter)
			if err != nil {
				log.WithError(err).Error("distinct wards failed")
				return fiber.ErrInternalServerError
			}
			return c.JSON(sortedWards(wards))
		}

		if id.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user email missing")
		}
		res, err := scope.Resolve(ctx, dir, id.Email)
		if err != nil {
			log.WithError(err).Error("scope resolution failed")
			return fiber.ErrInternalServerError
		}
		if res.Empty() {
			return c.JSON([]string{})
		}

		wards, err := dir.DistinctWards(ctx, scope.And(pairFilter, res.Filter()))
		if err != nil {
			log.WithError(err).Error("distinct wards failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedWards(wards))
	}
}
