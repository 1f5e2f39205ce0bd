package models

import "gorm.io/gorm"

// EnrollmentRequest is a lead captured from the public enrollment form
type EnrollmentRequest struct {
	gorm.Model
	DomainID uint   `json:"domainId" gorm:"index"`
	Domain   string `json:"domain"`
	CourseID uint   `json:"courseId" gorm:"index"`
	Course   string `json:"course"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status" gorm:"column:request_status;default:'pending'"`
}
