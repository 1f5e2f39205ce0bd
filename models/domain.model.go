package models

import "gorm.io/gorm"

// Domain represents a subject area landing page (DevOps, AI, etc.)
type Domain struct {
	gorm.Model
	DomainID     uint   `json:"domainId" gorm:"index"` // 1 = DevOps, 2 = AI, etc.
	CourseID     uint   `json:"courseId" gorm:"index"`
	Domain       string `json:"domain"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Price        string `json:"price"`
	Description  string `json:"description" gorm:"type:text"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsActive     bool   `json:"isActive"`
}
