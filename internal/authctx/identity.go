// Package authctx carries the authenticated identity through fiber Locals.
package authctx

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"boothtrack/internal/normalize"
)

const localsKey = "identity"

// Identity is the canonical per-request caller. IsAdmin is computed
// once here; handlers never re-derive it from Roles.
type Identity struct {
	ID      string
	Email   string
	Roles   []string
	IsAdmin bool
}

func New(id, email string, roles []string) Identity {
	return Identity{
		ID:      id,
		Email:   normalize.Email(email),
		Roles:   roles,
		IsAdmin: slices.Contains(roles, "admin"),
	}
}

func Set(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

func From(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(localsKey).(Identity)
	return id, ok
}
