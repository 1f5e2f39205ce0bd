package heroController

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"greenstech/config"
	"greenstech/database"
	"greenstech/models"
	"greenstech/utils"

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
	require.NoError(t, db.AutoMigrate(&models.Hero{}))
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	app := fiber.New()
	app.Get("/api/hero", GetHero)
	app.Post("/api/hero", CreateHero)
	return app
}

func heroForm(t *testing.T, fields map[string]string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, name := range imageNames {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postHero(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/hero", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestCreateHeroRequiresImage(t *testing.T) {
	app := setupTest(t)

	body, contentType := heroForm(t, map[string]string{"title": "Learn DevOps"})
	status, parsed := postHero(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "At least one hero image is required", parsed["message"])
}

func TestCreateHeroStoresImageUnderHeroes(t *testing.T) {
	app := setupTest(t)

	body, contentType := heroForm(t, map[string]string{
		"title":    "Learn DevOps",
		"domainId": "2",
		"courseId": "0",
	}, "banner.jpg")
	status, parsed := postHero(t, app, body, contentType)
	require.Equal(t, fiber.StatusCreated, status)

	data := parsed["data"].(map[string]interface{})
	images := data["images"].([]interface{})
	require.Len(t, images, 1)

	path := images[0].(string)
	assert.True(t, strings.HasPrefix(path, "/uploads/heroes/"), path)

	// The stored path maps back to a real file on disk.
	_, err := os.Stat(utils.DiskPath(path))
	assert.NoError(t, err)
}

func TestCreateHeroRejectsNonImageUpload(t *testing.T) {
	app := setupTest(t)

	body, contentType := heroForm(t, map[string]string{"title": "Learn DevOps"}, "malware.exe")
	status, parsed := postHero(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Only image files allowed", parsed["message"])
}

func TestGetHeroPrefersDomainRowOverLanding(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Hero{DomainID: 2, CourseID: 0, Title: "domain", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Hero{DomainID: 0, CourseID: 0, Title: "landing", IsActive: true}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/hero?domainId=2&courseId=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data models.Hero `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "domain", parsed.Data.Title)
}
