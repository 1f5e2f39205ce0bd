package models

import "gorm.io/gorm"

// StudentSuccess is a placement/success story card
type StudentSuccess struct {
	gorm.Model
	DomainID  uint   `json:"domainId" gorm:"index"`
	CourseID  uint   `json:"courseId" gorm:"index"`
	Name      string `json:"name"`
	Course    string `json:"course"`
	Rating    int    `json:"rating" gorm:"not null"`
	Review    string `json:"review" gorm:"type:text;not null"`
	Placement string `json:"placement"`
	Duration  string `json:"duration"`
	Image     string `json:"image"`
	IsActive  bool   `json:"isActive"`
}
