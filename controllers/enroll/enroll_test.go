package enrollController

import (
	"net/http/httptest"
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
	require.NoError(t, db.AutoMigrate(
		&models.Domain{}, &models.Course{}, &models.EnrollmentRequest{},
		&models.Contact{}, &models.EnrollCard{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/enrollments/request", CreateEnrollmentRequest)
	app.Get("/api/enroll-cards", GetEnrollCards)
	app.Patch("/api/enroll-cards/:id/deactivate", DeactivateEnrollCard)
	app.Patch("/api/enroll-cards/:id/restore", RestoreEnrollCard)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestEnrollmentRequestUnknownDomain(t *testing.T) {
	app := setupTest(t)

	status := postJSON(t, app, "/api/enrollments/request",
		`{"domainId":9,"name":"Jane","email":"jane@example.com","phone":"9876543210"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEnrollmentRequestCreatesLeadAndContact(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Domain{DomainID: 2, Domain: "DevOps", IsActive: true}).Error)
	course := models.Course{DomainID: 2, Title: "Kubernetes Mastery", IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	status := postJSON(t, app, "/api/enrollments/request",
		`{"domainId":2,"courseId":`+strconv.Itoa(int(course.ID))+`,"name":"Jane","email":"jane@example.com","phone":"9876543210"}`)
	require.Equal(t, fiber.StatusCreated, status)

	var request models.EnrollmentRequest
	require.NoError(t, db.First(&request).Error)
	assert.Equal(t, "DevOps", request.Domain)
	assert.Equal(t, "Kubernetes Mastery", request.Course)
	assert.Equal(t, "pending", request.Status)

	var contact models.Contact
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&contact).Error)
	assert.Equal(t, models.ContactTypeCourseEnquiry, contact.ContactType)
	assert.Equal(t, course.ID, contact.CourseID)
}

func TestEnrollmentRequestRepeatUpserts(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Domain{DomainID: 2, Domain: "DevOps", IsActive: true}).Error)

	body := `{"domainId":2,"name":"Jane","email":"jane@example.com","phone":"9876543210"}`
	require.Equal(t, fiber.StatusCreated, postJSON(t, app, "/api/enrollments/request", body))
	require.Equal(t, fiber.StatusCreated, postJSON(t, app, "/api/enrollments/request", body))

	var requests, contacts int64
	db.Model(&models.EnrollmentRequest{}).Count(&requests)
	db.Model(&models.Contact{}).Count(&contacts)
	assert.EqualValues(t, 2, requests)
	assert.EqualValues(t, 1, contacts)
}

func TestEnrollCardDeactivateAndRestore(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	card := models.EnrollCard{Title: "Join now", Image: "/uploads/enroll-cards/a.png", IsActive: true}
	require.NoError(t, db.Create(&card).Error)
	id := strconv.Itoa(int(card.ID))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/enroll-cards/"+id+"/deactivate", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.EnrollCard
	require.NoError(t, db.First(&stored, card.ID).Error)
	assert.False(t, stored.IsActive)

	resp, err = app.Test(httptest.NewRequest("PATCH", "/api/enroll-cards/"+id+"/restore", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, card.ID).Error)
	assert.True(t, stored.IsActive)
}
