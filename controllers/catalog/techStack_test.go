package catalogController

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
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

func setupTechTest(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TechStack{}))
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	app := fiber.New()
	app.Put("/api/tech-stack/:id", UpdateTechStack)
	return app
}

func iconForm(t *testing.T, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("icon", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte("icon-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpdateTechStackReplacesIconFile(t *testing.T) {
	app := setupTechTest(t)
	db := database.Database.Db

	item := models.TechStack{Name: "Go", IconURL: "/uploads/tech-stack/old.png", IsActive: true}
	require.NoError(t, db.Create(&item).Error)

	oldDisk := utils.DiskPath(item.IconURL)
	require.NoError(t, os.MkdirAll(filepath.Dir(oldDisk), 0755))
	require.NoError(t, os.WriteFile(oldDisk, []byte("old"), 0644))

	body, contentType := iconForm(t, "new.png")
	req := httptest.NewRequest("PUT", "/api/tech-stack/"+strconv.Itoa(int(item.ID)), body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.TechStack
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.NotEqual(t, item.IconURL, stored.IconURL)

	// Old icon is gone, new one is on disk.
	_, err = os.Stat(oldDisk)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(utils.DiskPath(stored.IconURL))
	assert.NoError(t, err)
}

func TestUpdateTechStackSaveFailureRemovesNewIcon(t *testing.T) {
	app := setupTechTest(t)
	db := database.Database.Db

	item := models.TechStack{Name: "Go", IconURL: "/uploads/tech-stack/old.png", IsActive: true}
	require.NoError(t, db.Create(&item).Error)

	oldDisk := utils.DiskPath(item.IconURL)
	require.NoError(t, os.MkdirAll(filepath.Dir(oldDisk), 0755))
	require.NoError(t, os.WriteFile(oldDisk, []byte("old"), 0644))

	// Make the row update fail after the new icon has hit the disk.
	require.NoError(t, db.Exec(
		`CREATE TRIGGER tech_stack_updates_disabled BEFORE UPDATE ON tech_stacks
		 BEGIN SELECT RAISE(ABORT, 'updates disabled'); END`,
	).Error)

	body, contentType := iconForm(t, "new.png")
	req := httptest.NewRequest("PUT", "/api/tech-stack/"+strconv.Itoa(int(item.ID)), body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// The replacement file must not be orphaned; the old one must survive.
	_, err = os.Stat(oldDisk)
	assert.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(oldDisk))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "old.png", entries[0].Name())
}
