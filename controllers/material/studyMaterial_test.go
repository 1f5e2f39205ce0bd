package materialController

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.StudyMaterial{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/study-material", GetStudyMaterials)
	return app
}

func seedMaterial(t *testing.T, fileName string, domainID uint, createdAt time.Time) {
	t.Helper()
	item := models.StudyMaterial{
		Model:    gorm.Model{CreatedAt: createdAt},
		DomainID: domainID,
		FileName: fileName,
		FileType: models.MaterialTypePDF,
		IsActive: true,
	}
	require.NoError(t, database.Database.Db.Create(&item).Error)
}

func fetchMaterials(t *testing.T, app *fiber.App, url string) []models.StudyMaterial {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data []models.StudyMaterial `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed.Data
}

// Domain and course tiers come back in insertion order even when rows were
// created out of chronological order.
func TestGetStudyMaterialsDomainTierOrderedByID(t *testing.T) {
	app := setupTest(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMaterial(t, "first.pdf", 2, base.Add(2*time.Hour))
	seedMaterial(t, "second.pdf", 2, base.Add(time.Hour))
	seedMaterial(t, "third.pdf", 2, base)

	items := fetchMaterials(t, app, "/api/study-material?domainId=2")
	require.Len(t, items, 3)
	assert.Equal(t, "first.pdf", items[0].FileName)
	assert.Equal(t, "second.pdf", items[1].FileName)
	assert.Equal(t, "third.pdf", items[2].FileName)
}

func TestGetStudyMaterialsFallsBackToLanding(t *testing.T) {
	app := setupTest(t)

	seedMaterial(t, "landing.pdf", 0, time.Now())

	items := fetchMaterials(t, app, "/api/study-material?domainId=9")
	require.Len(t, items, 1)
	assert.Equal(t, "landing.pdf", items[0].FileName)
}
