package catalogController

import (
	"encoding/json"
	"net/http/httptest"
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
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Domain{}, &models.TechStack{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/courses", GetCourses)
	app.Get("/api/domain", GetDomains)
	return app
}

func getCourses(t *testing.T, app *fiber.App, target string) []models.Course {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func TestGetCoursesReturnsDomainSet(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Course{DomainID: 0, Title: "Landing", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Course{DomainID: 2, Title: "DevOps Bootcamp", IsActive: true}).Error)

	courses := getCourses(t, app, "/api/courses?domainId=2")
	require.Len(t, courses, 1)
	assert.Equal(t, "DevOps Bootcamp", courses[0].Title)
}

func TestGetCoursesFallsBackToLandingSet(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Course{DomainID: 0, Title: "Landing", IsActive: true}).Error)

	courses := getCourses(t, app, "/api/courses?domainId=9")
	require.Len(t, courses, 1)
	assert.Equal(t, "Landing", courses[0].Title)
}

func TestGetCoursesExcludesInactive(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Course{DomainID: 2, Title: "Hidden", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.Course{DomainID: 0, Title: "Landing", IsActive: true}).Error)

	courses := getCourses(t, app, "/api/courses?domainId=2")
	require.Len(t, courses, 1)
	assert.Equal(t, "Landing", courses[0].Title)
}
