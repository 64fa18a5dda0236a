package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"boothtrack/internal/repository"
	"boothtrack/model"
)

// CreateAssignment registers a booth on the roster.
func CreateAssignment(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.BoothAssignment
		if err := c.BodyParser(&a); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if a.PC == "" || a.Constituency == "" || a.Ward == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc, constituency and ward are required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		saved, err := roster.Insert(ctx, a)
		if err != nil {
			log.WithError(err).Error("assignment insert failed")
			return fiber.ErrInternalServerError
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// GetPCs lists every PC on the roster. Unscoped master list for the
// entry form dropdowns.
func GetPCs(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		pcs, err := roster.DistinctPCs(ctx)
		if err != nil {
			log.WithError(err).Error("roster pcs failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedNames(pcs))
	}
}

func GetConstituenciesByPC(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pc := c.Params("pc")
		if pc == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		acs, err := roster.DistinctConstituenciesByPC(ctx, pc)
		if err != nil {
			log.WithError(err).Error("roster constituencies failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedNames(acs))
	}
}

func GetWards(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pc := c.Query("pc")
		constituency := c.Query("constituency")

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		var wards []string
		var err error
		if pc == "" && constituency == "" {
			wards, err = roster.DistinctAllWards(ctx)
		} else if pc == "" || constituency == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pc and constituency are required together")
		} else {
			wards, err = roster.DistinctWards(ctx, pc, constituency)
		}
		if err != nil {
			log.WithError(err).Error("roster wards failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(sortedWards(wards))
	}
}

func GetAssignments(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		all, err := roster.FindAll(ctx)
		if err != nil {
			log.WithError(err).Error("roster find failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(all)
	}
}

// GetBoothsByAC lists the roster entries for a constituency with a
// count, for the allocation overview screen.
func GetBoothsByAC(roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		constituency := c.Params("constituency")

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		booths, err := roster.FindByConstituency(ctx, constituency)
		if err != nil {
			log.WithError(err).Error("roster find failed")
			return fiber.ErrInternalServerError
		}
		if len(booths) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message":     "No booths found for the constituency: " + constituency,
				"totalBooths": 0,
			})
		}
		return c.JSON(fiber.Map{
			"totalBooths": len(booths),
			"booths":      booths,
		})
	}
}
