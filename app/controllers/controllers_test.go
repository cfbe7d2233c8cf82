package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withUser injects token claims the way the authorization gate does, so the
// handlers under test see an authenticated caller.
func withUser(id uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", jwt.MapClaims{"user_id": id.String()})
		return c.Next()
	}
}

func TestUpdateRoleUnknownRoleIs404(t *testing.T) {
	app := fiber.New()
	app.Put("/user/role", withUser(uuid.New()), UpdateRole)

	req := httptest.NewRequest("PUT", "/user/role", strings.NewReader(`{"role":"xx"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestUpdateRoleMissingRoleIs400(t *testing.T) {
	app := fiber.New()
	app.Put("/user/role", withUser(uuid.New()), UpdateRole)

	req := httptest.NewRequest("PUT", "/user/role", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestUploadProfilePictureOversizeIs413(t *testing.T) {
	app := fiber.New(fiber.Config{BodyLimit: 16 << 20})
	app.Post("/user/picture", withUser(uuid.New()), UploadProfilePicture)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "huge.jpg")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 6<<20))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/user/picture", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := app.Test(req, 30000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, res.StatusCode)
}

func TestUploadProfilePictureMissingFileIs400(t *testing.T) {
	app := fiber.New()
	app.Post("/user/picture", withUser(uuid.New()), UploadProfilePicture)

	req := httptest.NewRequest("POST", "/user/picture", strings.NewReader(""))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestFilterPublishesMalformedParamIs400(t *testing.T) {
	app := fiber.New()
	app.Get("/publications/filter", FilterPublishes)

	res, err := app.Test(httptest.NewRequest("GET", "/publications/filter?min_price=cheap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/publications/filter?min_date=01-02-2021", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestFilterOrdersMalformedParamIs400(t *testing.T) {
	app := fiber.New()
	app.Get("/orders/filter", FilterOrders)

	res, err := app.Test(httptest.NewRequest("GET", "/orders/filter?region=west", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestListRegionsMalformedDepartmentIs400(t *testing.T) {
	app := fiber.New()
	app.Get("/regions", ListRegions)

	res, err := app.Test(httptest.NewRequest("GET", "/regions?department=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
