package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"boothtrack/dto"
	"boothtrack/internal/normalize"
	"boothtrack/internal/repository"
	"boothtrack/model"
	"boothtrack/services"
)

// CreateBoothResult records one booth's vote counts for a time slot.
func CreateBoothResult(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var br model.BoothResult
		if err := c.BodyParser(&br); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if br.Booth == "" || br.TimeSlot == "" {
			return fiber.NewError(fiber.StatusBadRequest, "booth and timeSlot are required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		saved, err := booths.Insert(ctx, br)
		if err != nil {
			log.WithError(err).Error("booth result insert failed")
			return fiber.ErrInternalServerError
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

func GetBooths(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		all, err := booths.FindAll(ctx)
		if err != nil {
			log.WithError(err).Error("booth find failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(all)
	}
}

func GetBoothResultByID(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		br, err := booths.FindByID(ctx, id)
		if err != nil {
			log.WithError(err).Error("booth lookup failed")
			return fiber.ErrInternalServerError
		}
		if br == nil {
			return fiber.NewError(fiber.StatusNotFound, "Booth not found")
		}
		return c.JSON(br)
	}
}

func GetBoothResultsByBooth(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("boothName")

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		results, err := booths.FindByBooth(ctx, name)
		if err != nil {
			log.WithError(err).Error("booth lookup failed")
			return fiber.ErrInternalServerError
		}
		if len(results) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Booth data not found")
		}
		return c.JSON(results)
	}
}

func GetDataByConstituency(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		constituency := c.Params("constituency")

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		results, err := booths.FindByConstituency(ctx, constituency)
		if err != nil {
			log.WithError(err).Error("constituency lookup failed")
			return fiber.ErrInternalServerError
		}
		if len(results) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No data found for this constituency")
		}
		return c.JSON(results)
	}
}

// GetSummaryByConstituency rolls up the latest time slot of every
// booth in the constituency.
func GetSummaryByConstituency(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		constituency := c.Params("constituency")

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		results, err := booths.FindByConstituency(ctx, constituency)
		if err != nil {
			log.WithError(err).Error("constituency lookup failed")
			return fiber.ErrInternalServerError
		}
		if len(results) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No data found for this constituency")
		}

		return c.JSON(dto.SummaryResponse{
			Success:      true,
			Constituency: constituency,
			Summary:      services.SummarizeConstituency(results),
		})
	}
}

// GetBoothStatus compares the roster against reported results,
// optionally for one time slot.
func GetBoothStatus(booths *repository.BoothRepository, roster *repository.AssignmentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		constituency := c.Params("constituency")
		timeSlot := c.Query("timeSlot")

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		assigned, err := roster.FindByConstituency(ctx, constituency)
		if err != nil {
			log.WithError(err).Error("roster lookup failed")
			return fiber.ErrInternalServerError
		}
		if len(assigned) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message":           "No booths found for the constituency: " + constituency,
				"totalBooths":       0,
				"missingBoothCount": 0,
				"boothStatus":       []dto.BoothFlag{},
			})
		}
		names := make([]string, 0, len(assigned))
		for _, a := range assigned {
			names = append(names, a.Booth)
		}

		filter := bson.M{"constituency": normalize.Key(constituency)}
		if timeSlot != "" {
			filter["time_slot"] = timeSlot
		}
		reported, err := booths.FindByFilter(ctx, filter)
		if err != nil {
			log.WithError(err).Error("booth status lookup failed")
			return fiber.ErrInternalServerError
		}

		flags, missing := services.BoothStatus(names, reported)
		resp := dto.BoothStatusResponse{
			TotalBooths:       len(names),
			MissingBoothCount: len(missing),
			BoothStatus:       flags,
		}
		// Only itemize missing booths when a slot was asked for.
		if timeSlot != "" {
			resp.NoDataBooths = missing
		}
		return c.JSON(resp)
	}
}

// CheckEntry validates a prospective report before the field app
// submits it: no duplicate slot, polled votes never decreasing.
func CheckEntry(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		booth := c.Query("booth")
		timeSlot := c.Query("timeSlot")
		if booth == "" || timeSlot == "" {
			return fiber.NewError(fiber.StatusBadRequest, "booth and timeSlot are required")
		}
		polled, _ := strconv.Atoi(c.Query("polledVotes"))

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := booths.FindOneBySlot(ctx, booth, timeSlot)
		if err != nil {
			log.WithError(err).Error("entry check failed")
			return fiber.ErrInternalServerError
		}
		var previous []model.BoothResult
		if existing == nil {
			if previous, err = booths.FindByBoothNewestSlotFirst(ctx, booth); err != nil {
				log.WithError(err).Error("entry check failed")
				return fiber.ErrInternalServerError
			}
		}
		return c.JSON(services.CheckEntry(existing, previous, timeSlot, polled))
	}
}

// TotalVotes and friends are the dashboard headline numbers.
func TotalOf(booths *repository.BoothRepository, field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		total, err := booths.SumField(ctx, field)
		if err != nil {
			log.WithError(err).WithField("field", field).Error("vote total failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(dto.TotalCountResponse{TotalCount: total})
	}
}

func TotalVotesByBoothType(booths *repository.BoothRepository) fiber.Handler {
	return boothTypeTotals(booths, false)
}

func VotesSplitByBoothType(booths *repository.BoothRepository) fiber.Handler {
	return boothTypeTotals(booths, true)
}

func boothTypeTotals(booths *repository.BoothRepository, withSplit bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		totals, err := booths.TotalsByBoothType(ctx, withSplit)
		if err != nil {
			log.WithError(err).Error("booth type totals failed")
			return fiber.ErrInternalServerError
		}
		if len(totals) == 0 && !withSplit {
			return c.JSON([]repository.BoothTypeTotals{{BoothType: "No Data"}})
		}
		return c.JSON(totals)
	}
}

func GetAllConstituenciesData(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		rollups, err := booths.AllConstituencyRollups(ctx)
		if err != nil {
			log.WithError(err).Error("constituency rollups failed")
			return fiber.ErrInternalServerError
		}
		if len(rollups) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No constituency data found")
		}
		return c.JSON(rollups)
	}
}

func DeleteBoothResult(booths *repository.BoothRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		deleted, err := booths.DeleteByID(ctx, id)
		if err != nil {
			log.WithError(err).Error("booth delete failed")
			return fiber.ErrInternalServerError
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "Booth not found")
		}
		return c.JSON(fiber.Map{"message": "Booth deleted successfully"})
	}
}
