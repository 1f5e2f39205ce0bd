package models

import "gorm.io/gorm"

// TechStack is one technology icon in the "tools you will learn" strip
type TechStack struct {
	gorm.Model
	DomainID  uint   `json:"domainId" gorm:"index"`
	CourseID  uint   `json:"courseId" gorm:"index"`
	Name      string `json:"name"`
	IconURL   string `json:"iconUrl"`
	SortOrder int    `json:"order" gorm:"column:sort_order"`
	IsActive  bool   `json:"isActive"`
}
