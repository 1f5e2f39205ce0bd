package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CertificateStep is one step in the "how to earn your certificate" strip
type CertificateStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Certificate represents the certificate showcase section
type Certificate struct {
	gorm.Model
	DomainID         uint                                 `json:"domainId" gorm:"index"`
	CourseID         uint                                 `json:"courseId" gorm:"index"`
	SectionTitle     string                               `json:"sectionTitle"`
	Steps            datatypes.JSONSlice[CertificateStep] `json:"steps"`
	CertificateImage string                               `json:"certificateImage"`
	IsActive         bool                                 `json:"isActive"`
}
