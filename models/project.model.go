package models

import "gorm.io/gorm"

// Project is a showcase project with its technology tags
type Project struct {
	gorm.Model
	DomainID    uint   `json:"domainId" gorm:"index"`
	CourseID    uint   `json:"courseId" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   int    `json:"order" gorm:"column:sort_order"`
	IsActive    bool   `json:"isActive"`

	Tech []ProjectTech `json:"tech" gorm:"foreignKey:ProjectID"`
}

// ProjectTech is one technology tag attached to a project
type ProjectTech struct {
	gorm.Model
	ProjectID uint   `json:"projectId" gorm:"index;not null"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
}
