package models

import "gorm.io/gorm"

// EnrollCard represents an enrollment promo card
type EnrollCard struct {
	gorm.Model
	DomainID  uint   `json:"domainId" gorm:"index"`
	CourseID  uint   `json:"courseId" gorm:"index"`
	Title     string `json:"title" gorm:"size:255;not null"`
	Image     string `json:"image" gorm:"size:500;not null"`
	SortOrder int    `json:"order" gorm:"column:sort_order"`
	IsActive  bool   `json:"isActive"`
}
