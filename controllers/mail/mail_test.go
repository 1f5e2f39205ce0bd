package mailController

import (
	"net/http/httptest"
	"net/url"
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
	require.NoError(t, db.AutoMigrate(&models.Contact{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/mail/process", ProcessMail)
	app.Get("/api/mail/contacts", GetContacts)
	app.Delete("/api/mail/contacts/:id", DeleteContact)
	return app
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) int {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSubscribeIsIdempotent(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeClientGeneral)
	form.Set("email", "jane@example.com")
	form.Set("name", "Jane")

	require.Equal(t, fiber.StatusOK, postForm(t, app, "/api/mail/process", form))

	form.Set("name", "Jane Doe")
	require.Equal(t, fiber.StatusOK, postForm(t, app, "/api/mail/process", form))

	var contacts []models.Contact
	require.NoError(t, database.Database.Db.Find(&contacts).Error)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, models.ContactTypeGeneral, contacts[0].ContactType)
}

func TestSubscribeSameEmailDifferentCourses(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeClientCourse)
	form.Set("email", "jane@example.com")
	form.Set("courseId", "3")
	require.Equal(t, fiber.StatusOK, postForm(t, app, "/api/mail/process", form))

	form.Set("courseId", "5")
	require.Equal(t, fiber.StatusOK, postForm(t, app, "/api/mail/process", form))

	var count int64
	database.Database.Db.Model(&models.Contact{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestProcessRejectsUnknownMode(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", "SOMETHING_ELSE")
	form.Set("email", "jane@example.com")

	assert.Equal(t, fiber.StatusBadRequest, postForm(t, app, "/api/mail/process", form))
}

func TestBulkMailWithNoRecipients(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeAdminBulk)
	form.Set("subject", "Hello")
	form.Set("body", "<p>Hi</p>")
	form.Set("targetType", TargetGeneral)

	assert.Equal(t, fiber.StatusNotFound, postForm(t, app, "/api/mail/process", form))
}

func TestBulkMailRejectsInvalidTarget(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeAdminBulk)
	form.Set("subject", "Hello")
	form.Set("body", "<p>Hi</p>")
	form.Set("targetType", "EVERYONE")

	assert.Equal(t, fiber.StatusBadRequest, postForm(t, app, "/api/mail/process", form))
}

func seedContact(t *testing.T, email, contactType string, domainID, courseID uint) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&models.Contact{
		Email: email, ContactType: contactType, DomainID: domainID, CourseID: courseID,
	}).Error)
}

func segmentEmails(t *testing.T, targetType string, domainID, courseID uint) []string {
	t.Helper()
	q, ok := contactSegment(database.Database.Db, targetType, domainID, courseID)
	require.True(t, ok)
	var emails []string
	require.NoError(t, q.Order("email ASC").Pluck("email", &emails).Error)
	return emails
}

func TestCourseSegmentScopedToDomainAndCourse(t *testing.T) {
	setupTest(t)
	seedContact(t, "right@example.com", models.ContactTypeCourseEnquiry, 2, 5)
	seedContact(t, "other-domain@example.com", models.ContactTypeCourseEnquiry, 1, 5)
	seedContact(t, "domain-only@example.com", models.ContactTypeCourseEnquiry, 2, 0)

	assert.Equal(t, []string{"right@example.com"}, segmentEmails(t, TargetCourseSpecific, 2, 5))
	assert.Equal(t, []string{"other-domain@example.com"}, segmentEmails(t, TargetCourseSpecific, 1, 5))
}

func TestAllCoursesSegmentMatchesAnyNonZeroCourse(t *testing.T) {
	setupTest(t)
	seedContact(t, "general-with-course@example.com", models.ContactTypeGeneral, 2, 9)
	seedContact(t, "enquiry-no-course@example.com", models.ContactTypeCourseEnquiry, 2, 0)
	seedContact(t, "enquiry@example.com", models.ContactTypeCourseEnquiry, 1, 3)

	assert.Equal(t,
		[]string{"enquiry@example.com", "general-with-course@example.com"},
		segmentEmails(t, TargetAllCourses, 0, 0))
}

func TestGeneralSegmentMatchesContactTypeOnly(t *testing.T) {
	setupTest(t)
	seedContact(t, "general@example.com", models.ContactTypeGeneral, 0, 0)
	seedContact(t, "enquiry@example.com", models.ContactTypeCourseEnquiry, 2, 5)

	assert.Equal(t, []string{"general@example.com"}, segmentEmails(t, TargetGeneral, 0, 0))
}

func TestBulkMailCourseTargetWrongDomainFindsNoRecipients(t *testing.T) {
	app := setupTest(t)
	seedContact(t, "right@example.com", models.ContactTypeCourseEnquiry, 2, 5)

	form := url.Values{}
	form.Set("mode", ModeAdminBulk)
	form.Set("subject", "Hello")
	form.Set("body", "<p>Hi</p>")
	form.Set("targetType", TargetCourseSpecific)
	form.Set("domainId", "1")
	form.Set("courseId", "5")

	assert.Equal(t, fiber.StatusNotFound, postForm(t, app, "/api/mail/process", form))
}

func TestBulkMailCourseTargetRequiresBothIDs(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeAdminBulk)
	form.Set("subject", "Hello")
	form.Set("body", "<p>Hi</p>")
	form.Set("targetType", TargetCourseSpecific)
	form.Set("courseId", "5")

	assert.Equal(t, fiber.StatusBadRequest, postForm(t, app, "/api/mail/process", form))
}

func TestBulkMailDomainTargetRequiresDomainID(t *testing.T) {
	app := setupTest(t)

	form := url.Values{}
	form.Set("mode", ModeAdminBulk)
	form.Set("subject", "Hello")
	form.Set("body", "<p>Hi</p>")
	form.Set("targetType", TargetDomainSpecific)

	assert.Equal(t, fiber.StatusBadRequest, postForm(t, app, "/api/mail/process", form))
}
