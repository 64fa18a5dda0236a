package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"boothtrack/model"
)

type fakeUserByEmail struct {
	user *model.User
}

func (f *fakeUserByEmail) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func loginApp(t *testing.T, users UserByEmail) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "login-secret")
	app := fiber.New()
	app.Post("/login", Login(users))
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesValidToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		ID:           bson.NewObjectID(),
		Email:        "zonal@x.com",
		PasswordHash: string(hash),
		Roles:        []string{"viewer"},
	}
	app := loginApp(t, &fakeUserByEmail{user: user})

	resp := postLogin(t, app, `{"email":" Zonal@X.com ","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(body.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("login-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims["sub"])
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	user := &model.User{ID: bson.NewObjectID(), Email: "zonal@x.com", PasswordHash: string(hash)}
	app := loginApp(t, &fakeUserByEmail{user: user})

	wrongPw := postLogin(t, app, `{"email":"zonal@x.com","password":"nope"}`)
	unknown := postLogin(t, app, `{"email":"ghost@x.com","password":"hunter2"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)

	b1, _ := io.ReadAll(wrongPw.Body)
	b2, _ := io.ReadAll(unknown.Body)
	assert.Equal(t, string(b1), string(b2))
}

func TestLoginMissingFields(t *testing.T) {
	app := loginApp(t, &fakeUserByEmail{})
	resp := postLogin(t, app, `{"email":"zonal@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
