package models

import "gorm.io/gorm"

// Course represents a course card shown on a domain page
type Course struct {
	gorm.Model
	DomainID    uint   `json:"domainId" gorm:"index"` // 0 = landing
	CourseID    uint   `json:"courseId" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	IsActive    bool   `json:"isActive"`
}
