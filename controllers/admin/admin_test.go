package adminController

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"greenstech/config"
	"greenstech/database"
	"greenstech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 10}

	app := fiber.New()
	app.Post("/api/admin/signup", Signup)
	app.Post("/api/admin/login", Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestSignupAndLogin(t *testing.T) {
	app := setupTest(t)

	status, body := postJSON(t, app, "/api/admin/signup",
		`{"username":"admin","email":"admin@greenstech.in","password":"strongpass1"}`)
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "admin@greenstech.in", data["email"])

	status, body = postJSON(t, app, "/api/admin/login",
		`{"email":"admin@greenstech.in","password":"strongpass1"}`)
	require.Equal(t, fiber.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupTest(t)

	status, _ := postJSON(t, app, "/api/admin/signup",
		`{"username":"admin","email":"admin@greenstech.in","password":"strongpass1"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/admin/signup",
		`{"username":"other","email":"admin@greenstech.in","password":"strongpass2"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Email is already registered.", body["message"])
}

func TestSignupNeverReturnsPassword(t *testing.T) {
	app := setupTest(t)

	_, body := postJSON(t, app, "/api/admin/signup",
		`{"username":"admin","email":"admin@greenstech.in","password":"strongpass1"}`)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "strongpass1")
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupTest(t)

	status, _ := postJSON(t, app, "/api/admin/login",
		`{"email":"nobody@greenstech.in","password":"whatever1"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTest(t)

	status, _ := postJSON(t, app, "/api/admin/signup",
		`{"username":"admin","email":"admin@greenstech.in","password":"strongpass1"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/api/admin/login",
		`{"email":"admin@greenstech.in","password":"wrongpass1"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
