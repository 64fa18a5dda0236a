package middleware

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"boothtrack/internal/authctx"
	"boothtrack/model"
)

// UserSource loads the current user record for a token subject.
// Roles come from here on every request, never from the token, so a
// revoked role takes effect without reissuing credentials.
type UserSource interface {
	FindUserByID(ctx context.Context, id string) (*model.User, error)
}

type claims struct {
	UID string `json:"uid,omitempty"` // some issuers put the id here instead of sub
	jwt.RegisteredClaims
}

// unauthorized is the single outward signal for every identity
// failure. Distinguishing the branches would leak which check failed.
func unauthorized() error {
	return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
}

// RequireIdentity verifies the bearer token, loads the user fresh, and
// attaches the canonical Identity to the request.
func RequireIdentity(users UserSource) fiber.Handler {
	secret := os.Getenv("JWT_SECRET")

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return unauthorized()
		}
		if secret == "" {
			log.Error("JWT_SECRET not set")
			return unauthorized()
		}

		var cl claims
		token, err := jwt.ParseWithClaims(
			strings.TrimSpace(auth[7:]),
			&cl,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return unauthorized()
		}

		uid := cl.UID
		if uid == "" {
			uid = cl.Subject
		}
		if uid == "" {
			return unauthorized()
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindUserByID(ctx, uid)
		if err != nil {
			log.WithError(err).Warn("user lookup failed")
			return unauthorized()
		}
		if user == nil {
			return unauthorized()
		}

		authctx.Set(c, authctx.New(uid, user.Email, user.Roles))
		return c.Next()
	}
}
