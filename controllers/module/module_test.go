package moduleController

import (
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.Module{}, &models.ModuleTopic{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/modules", GetModules)
	app.Post("/api/modules", CreateModule)
	app.Put("/api/modules/:id", UpdateModule)
	app.Delete("/api/modules/:id", DeleteModule)
	return app
}

func doForm(t *testing.T, app *fiber.App, method, target string, form url.Values) int {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateModuleWithTopics(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("title", "Kubernetes Basics")
	form.Set("domainId", "1")
	form.Set("topics", `[{"title":"Pods","order":1},{"title":"Services","order":2}]`)

	status := doForm(t, app, "POST", "/api/modules", form)
	assert.Equal(t, fiber.StatusCreated, status)

	var count int64
	database.Database.Db.Model(&models.ModuleTopic{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestUpdateModuleSynchronisesTopics(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	module := models.Module{Title: "CI/CD", IsActive: true}
	require.NoError(t, db.Create(&module).Error)
	keep := models.ModuleTopic{ModuleID: module.ID, Title: "Pipelines", IsActive: true}
	drop := models.ModuleTopic{ModuleID: module.ID, Title: "Legacy", IsActive: true}
	require.NoError(t, db.Create(&keep).Error)
	require.NoError(t, db.Create(&drop).Error)

	form := url.Values{}
	form.Set("topics", `[{"id":`+strconv.Itoa(int(keep.ID))+`,"title":"Pipelines v2"},{"title":"Rollbacks"}]`)

	status := doForm(t, app, "PUT", "/api/modules/"+strconv.Itoa(int(module.ID)), form)
	assert.Equal(t, fiber.StatusOK, status)

	var topics []models.ModuleTopic
	require.NoError(t, db.Where("module_id = ?", module.ID).Order("id ASC").Find(&topics).Error)
	require.Len(t, topics, 2)

	assert.Equal(t, keep.ID, topics[0].ID)
	assert.Equal(t, "Pipelines v2", topics[0].Title)
	assert.Equal(t, "Rollbacks", topics[1].Title)

	var dropped models.ModuleTopic
	err := db.Unscoped().First(&dropped, drop.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateModuleWithoutTopicsLeavesThemAlone(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	module := models.Module{Title: "Terraform", IsActive: true}
	require.NoError(t, db.Create(&module).Error)
	require.NoError(t, db.Create(&models.ModuleTopic{ModuleID: module.ID, Title: "State", IsActive: true}).Error)

	form := url.Values{}
	form.Set("title", "Terraform Advanced")

	status := doForm(t, app, "PUT", "/api/modules/"+strconv.Itoa(int(module.ID)), form)
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	db.Model(&models.ModuleTopic{}).Where("module_id = ?", module.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteModuleRemovesTopics(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	module := models.Module{Title: "Docker", IsActive: true}
	require.NoError(t, db.Create(&module).Error)
	require.NoError(t, db.Create(&models.ModuleTopic{ModuleID: module.ID, Title: "Images", IsActive: true}).Error)

	status := doForm(t, app, "DELETE", "/api/modules/"+strconv.Itoa(int(module.ID)), url.Values{})
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	db.Unscoped().Model(&models.ModuleTopic{}).Where("module_id = ?", module.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
