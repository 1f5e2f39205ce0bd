package models

import "gorm.io/gorm"

// Contact types
const (
	ContactTypeGeneral       = "GENERAL"
	ContactTypeCourseEnquiry = "COURSE_ENQUIRY"
)

// Contact is a mail recipient captured by subscribe forms and enrollments.
// One row per (email, courseId); repeat submissions are upserts.
type Contact struct {
	gorm.Model
	Email       string `json:"email" gorm:"size:255;not null;uniqueIndex:idx_contact_email_course"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ContactType string `json:"contactType"`
	DomainID    uint   `json:"domainId" gorm:"column:domain_id;index"`
	CourseID    uint   `json:"courseId" gorm:"column:course_id;uniqueIndex:idx_contact_email_course"`
}
