package models

import "gorm.io/gorm"

// Module represents a syllabus module with its topics
type Module struct {
	gorm.Model
	DomainID    uint   `json:"domainId" gorm:"index"`
	CourseID    uint   `json:"courseId" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	SortOrder   int    `json:"order" gorm:"column:sort_order"`
	IsActive    bool   `json:"isActive"`

	Topics []ModuleTopic `json:"topics" gorm:"foreignKey:ModuleID"`
}

// ModuleTopic is one syllabus entry inside a module
type ModuleTopic struct {
	gorm.Model
	ModuleID    uint   `json:"moduleId" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	SortOrder   int    `json:"order" gorm:"column:sort_order"`
	IsActive    bool   `json:"isActive"`
}
