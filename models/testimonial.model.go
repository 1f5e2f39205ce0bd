package models

import "gorm.io/gorm"

// Testimonial is a written student testimonial
type Testimonial struct {
	gorm.Model
	DomainID uint   `json:"domainId" gorm:"index"`
	CourseID uint   `json:"courseId" gorm:"index"`
	Name     string `json:"name"`
	Batch    string `json:"batch"`
	Image    string `json:"image"`
	Quote    string `json:"quote" gorm:"type:text;not null"`
	VideoURL string `json:"videoUrl"`
	IsActive bool   `json:"isActive"`
}
