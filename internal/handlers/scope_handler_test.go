package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scopeApp() *fiber.App {
	app := fiber.New()
	app.Get("/scope-by-email", ScopeByEmail(testDir()))
	return app
}

func TestScopeByEmailRequiresEmail(t *testing.T) {
	resp, err := scopeApp().Test(httptest.NewRequest(http.MethodGet, "/scope-by-email", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScopeByEmailMixedCasePadded(t *testing.T) {
	resp, err := scopeApp().Test(httptest.NewRequest(
		http.MethodGet, "/scope-by-email?email=A%40X.com%20", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{
		"level": "ACM",
		"allowed": [
			{"pc": "p1", "constituency": "c1", "ward": "1"},
			{"pc": "p1", "constituency": "c1", "ward": "2"}
		]
	}`, string(body))
}

func TestScopeByEmailUnknownIsNullLevel(t *testing.T) {
	resp, err := scopeApp().Test(httptest.NewRequest(
		http.MethodGet, "/scope-by-email?email=nobody%40x.com", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"level": null, "allowed": []}`, string(body))
}
