package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  "5f9c6f5e-8f2a-4c62-9d8e-1a2b3c4d5e6f",
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newPermitApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app.Get("/open", Permit("supplies", "list"), ok)
	app.Get("/me", Permit("users", "profile"), ok)
	app.Get("/admin", Permit("users", "list"), ok)
	app.Get("/unmapped", Permit("users", "unknownAction"), ok)
	return app
}

func TestPermitPublic(t *testing.T) {
	app := newPermitApp()

	res, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestPermitAuthenticatedRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newPermitApp()

	res, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, false))
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestPermitAdminRejectsRegularUser(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newPermitApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, false))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, true))
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestPermitUnknownActionDenied(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newPermitApp()

	req := httptest.NewRequest("GET", "/unmapped", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, true))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestPermitRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newPermitApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Get("/limited", RateLimit("test", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		res, err := app.Test(httptest.NewRequest("GET", "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	}
}
