package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"boothtrack/dto"
	"boothtrack/internal/repository"
	"boothtrack/internal/scope"
	"boothtrack/model"
)

// ScopeByEmail godoc
// @Summary      Resolve access scope for an email
// @Description  Returns the highest matched hierarchy level and every (pc, constituency, ward) the email may see. Level is null and allowed empty when the email has no hierarchy rows.
// @Tags         hierarchy
// @Produce      json
// @Param        email  query     string  true  "email to resolve"
// @Success      200    {object}  dto.ScopeResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /hierarchy/scope-by-email [get]
func ScopeByEmail(dir scope.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")
		if email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		res, err := scope.Resolve(ctx, dir, email)
		if err != nil {
			log.WithError(err).Error("scope resolution failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(dto.NewScopeResponse(res))
	}
}

// CreateHierarchyRow registers one (pc, constituency, ward) mapping
// with its contacts. Used by the directory loading tooling.
func CreateHierarchyRow(dir *repository.HierarchyRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row model.HierarchyRow
		if err := c.BodyParser(&row); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if row.PC == "" || row.Constituency == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc and constituency are required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		id, err := dir.InsertRow(ctx, row)
		if err != nil {
			log.WithError(err).Error("hierarchy insert failed")
			return fiber.ErrInternalServerError
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id.Hex()})
	}
}
