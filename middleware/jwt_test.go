package middleware

import (
	"net/http/httptest"
	"testing"

	"greenstech/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secret", AdminJWT, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"adminId": c.Locals("adminId"),
		})
	})
	return app
}

func TestAdminJWTRejectsMissingToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := guardedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/secret", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminJWTRejectsMalformedHeader(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := guardedApp()

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminJWTRejectsGarbageToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := guardedApp()

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminJWTRejectsTokenSignedWithOtherKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	token, err := GenerateJWT(1, "admin@greenstech.in", "admin")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := guardedApp()

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminJWTAcceptsValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	token, err := GenerateJWT(42, "admin@greenstech.in", "admin")
	require.NoError(t, err)

	app := guardedApp()

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
