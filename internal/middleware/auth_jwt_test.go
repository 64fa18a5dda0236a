package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boothtrack/internal/authctx"
	"boothtrack/model"
)

const testSecret = "test-secret"

type fakeUsers struct {
	users map[string]*model.User
	err   error
}

func (f *fakeUsers) FindUserByID(_ context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newApp(t *testing.T, users UserSource) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Use(RequireIdentity(users))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, ok := authctx.From(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"email": id.Email, "isAdmin": id.IsAdmin})
	})
	return app
}

func TestRequireIdentityAttachesIdentity(t *testing.T) {
	users := &fakeUsers{users: map[string]*model.User{
		"u1": {Email: "Lead@X.com", Roles: []string{"admin"}},
	}}
	app := newApp(t, users)

	token := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"email":"lead@x.com","isAdmin":true}`, string(body))
}

func TestRequireIdentityUIDClaimFallback(t *testing.T) {
	users := &fakeUsers{users: map[string]*model.User{
		"u2": {Email: "zonal@x.com", Roles: []string{"viewer"}},
	}}
	app := newApp(t, users)

	token := signToken(t, jwt.MapClaims{
		"uid": "u2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Every failure branch must produce the same opaque 401: no hint about
// which check rejected the request.
func TestRequireIdentityUniformUnauthorized(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	noSubject := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unknownUser := signToken(t, jwt.MapClaims{
		"sub": "ghost",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name  string
		users *fakeUsers
		auth  string
	}{
		{"missing header", &fakeUsers{}, ""},
		{"not bearer", &fakeUsers{}, "Basic abc"},
		{"garbage token", &fakeUsers{}, "Bearer not.a.jwt"},
		{"expired token", &fakeUsers{}, "Bearer " + expired},
		{"no subject", &fakeUsers{}, "Bearer " + noSubject},
		{"unknown user", &fakeUsers{}, "Bearer " + unknownUser},
		{"lookup failure", &fakeUsers{err: errors.New("down")}, "Bearer " + unknownUser},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp(t, tc.users)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			if firstBody == "" {
				firstBody = string(body)
			} else {
				assert.Equal(t, firstBody, string(body))
			}
		})
	}
}
