package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"boothtrack/dto"
	"boothtrack/internal/normalize"
	"boothtrack/model"
)

// UserByEmail is the login lookup; *repository.UserRepository
// implements it.
type UserByEmail interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

const tokenTTL = 12 * time.Hour

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func Login(users UserByEmail) fiber.Handler {
	secret := os.Getenv("JWT_SECRET")

	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindUserByEmail(ctx, normalize.Email(body.Email))
		if err != nil {
			log.WithError(err).Error("login lookup failed")
			return fiber.ErrInternalServerError
		}
		// Unknown email and wrong password answer identically.
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		claims := jwt.MapClaims{
			"sub": user.ID.Hex(),
			"exp": time.Now().Add(tokenTTL).Unix(),
			"iat": time.Now().Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			log.WithError(err).Error("token signing failed")
			return fiber.ErrInternalServerError
		}
		return c.JSON(dto.LoginResponse{Token: signed})
	}
}
